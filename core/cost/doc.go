// Package cost defines the pricing and quality metadata attached to tools so
// that LLM agents can weigh alternatives that differ in cost, accuracy, or
// speed.
//
// The main type is [ToolMetrics], which carries the per-call cost together
// with optional accuracy and average-duration figures. Tool constructors
// attach metrics via the tool package's WithMetrics option, and the values
// surface both in tool descriptions handed to models and in observability
// span attributes recorded per execution.
package cost
