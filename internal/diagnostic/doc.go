// Package diagnostic provides structured errors and warnings collected while
// validating item builders and tree invariants.
//
// Key capabilities:
//   - Required-field reports for item builders
//   - Parent/child consistency findings for trees
//   - "Did you mean" suggestions attached to a finding
package diagnostic
