// Package extract turns job listing pages into Job records using one strategy per job board.
package extract

import (
	"errors"
	"fmt"
)

// ErrAmbiguousSource is returned when no strategy can be inferred for a URL and none was
// forced. Only https URLs are dispatched by domain.
var ErrAmbiguousSource = errors.New("cannot infer extraction strategy from a non-https URL; choose one explicitly")

// UnknownDomainError is returned when an https URL's host has no registered strategy.
type UnknownDomainError struct {
	Domain string
}

func (e *UnknownDomainError) Error() string {
	return fmt.Sprintf("no extraction strategy for domain %q", e.Domain)
}

// UnknownStrategyError is returned when a forced strategy name is not registered.
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown extraction strategy %q", e.Name)
}

// Error represents a strategy that could not locate a required field.
type Error struct {
	Strategy string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction error: %s: %v", e.Strategy, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction error: %s", e.Strategy, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NoPatternError is returned when none of a strategy's title patterns match. Title holds
// the decoded title text so a markup change can be diagnosed.
type NoPatternError struct {
	Title string
}

func (e *NoPatternError) Error() string {
	return fmt.Sprintf("no pattern matched title %q", e.Title)
}

// UnitError is returned when structured salary data uses a unit other than the expected one.
type UnitError struct {
	Unit string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("salary unit is not yearly, got %q", e.Unit)
}
