// Package render writes one page of users for non-interactive output.
//
// Table output comes in two flavours: a tabwriter table for pipes and dumb
// terminals, and a lipgloss table for styled terminals. JSON, NDJSON and YAML
// emit the visible slice together with pagination metadata.
package render
