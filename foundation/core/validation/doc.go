// Package validation provides result aggregation and validator chains.
//
// Package: validation
// Title: Validation Results and Chains
// Description: A ValidationResult collects field errors and non-fatal
//              warnings. A ValidatorChain runs a sequence of rules against one
//              value and combines their results. The option validator is built
//              as one chain of rules over a settings draft.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial validation interfaces implementation
// - 2026-10-19 v0.2.0: Warnings, typed codes, removed parallel validators
package validation
