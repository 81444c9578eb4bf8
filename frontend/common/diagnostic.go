// Package common provides spans and diagnostic objects shared by the frontend.
package common

import (
	protocol "github.com/gluax-lang/lsp"
)

type (
	dSeverity  = protocol.DiagnosticSeverity
	diagnostic = protocol.Diagnostic
)

func NewDiagnostic(severity dSeverity, message string, span Span) *diagnostic {
	return &protocol.Diagnostic{
		Severity: &severity,
		Message:  message,
		Range:    span.ToRange(),
	}
}

func ErrorDiag(msg string, span Span) *diagnostic {
	return NewDiagnostic(protocol.DiagnosticSeverityError, msg, span)
}

// Diagnosable is implemented by frontend errors that can be shown in an editor.
type Diagnosable interface {
	error
	Diagnostic() *protocol.Diagnostic
}
