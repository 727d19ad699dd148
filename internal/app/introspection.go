package app

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
	"github.com/sirupsen/logrus"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector logs the configuration keys the application read
// and whether each one fell back to its default.
type ReportLoggerIntrospector struct {
}

// Introspect writes one debug entry per configuration key.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger, err := depend.Resolve[*logrus.Logger]()
	if err != nil {
		return err
	}
	for _, c := range r.Configs {
		logger.WithFields(logrus.Fields{
			"key":          c.Key,
			"used_default": c.UsedDefault,
		}).Debug("Config: key resolved")
	}
	return nil
}
