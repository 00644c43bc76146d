// Package pagination provides the CLI side of list pagination.
//
// This package contains the flag handling shared by the list commands:
//   - Params: --page, --page-size, --query, --match and --sort parsing and validation
//   - Meta: page metadata emitted alongside structured output
//   - ParseSort: "field" / "field:order" sort expressions
//
// Pages are 1-based on the command line and 0-based inside the list controller.
package pagination
