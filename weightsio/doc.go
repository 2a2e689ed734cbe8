// Package weightsio reads and writes the flat whitespace-separated weight
// vector format and the solve-mode output format.
package weightsio
