/*
Package dsl provides a fluent builder for constructing question graphs
programmatically, as an alternative to YAML documents.

Example:

	graph, err := dsl.New("mood").
		Question("mood").
		Prompt("Sweet or savory?").
		Options("Sweet", "Savory").
		Branch("Sweet", "dessert").
		Branch("Savory", dsl.End).
		Question("dessert").
		Prompt("Cake or ice cream?").
		Options("Cake", "Ice cream").
		Branch("Cake", dsl.End).
		Branch("Ice cream", dsl.End).
		Build()

Build runs the same validation as loading a graph from a file: dangling
branch targets reject the whole graph.
*/
package dsl
