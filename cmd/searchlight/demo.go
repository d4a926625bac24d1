package main

import (
	"github.com/lumina-dev/searchlight/core"
	"github.com/lumina-dev/searchlight/corpus"
)

// demoSources is a small built-in dataset for trying the engine out
// without wiring real APIs.
func demoSources() []corpus.Source {
	services := []core.Record{
		{Id: "api-gateway", Name: "API Gateway", Description: "Main API gateway service", Status: "active", Tags: []string{"api", "gateway"}},
		{Id: "user-service", Name: "User Service", Description: "User management service", Status: "active", Tags: []string{"users", "auth"}},
		{Id: "payment-service", Name: "Payment Service", Description: "Payment processing service", Status: "error", Tags: []string{"payments", "finance"}},
		{Id: "notification-service", Name: "Notification Service", Description: "Email and SMS notifications", Status: "active", Tags: []string{"notifications", "email"}},
	}

	metrics := []core.Record{
		{Id: "response-time", Name: "Response Time", Description: "Average API response time", Category: "performance"},
		{Id: "error-rate", Name: "Error Rate", Description: "Percentage of failed requests", Category: "reliability"},
		{Id: "active-users", Name: "Active Users", Description: "Number of currently active users", Category: "usage"},
		{Id: "cpu-usage", Name: "CPU Usage", Description: "Server CPU utilization", Category: "infrastructure"},
	}

	users := []core.Record{
		{Id: "admin-user", Name: "Admin User", Description: "System administrator", Status: "active"},
		{Id: "support-user", Name: "Support User", Description: "Customer support representative", Status: "active"},
		{Id: "guest-user", Name: "Guest User", Description: "Temporary guest access", Status: "inactive"},
	}

	return []corpus.Source{
		corpus.NewStaticSource(core.SourceTypeService, services),
		corpus.NewStaticSource(core.SourceTypeMetric, metrics),
		corpus.NewStaticSource(core.SourceTypeUser, users),
	}
}
