// Package pysource is a completion.Source for Python scripts that resolves
// member-access chains against a fixed catalog of script globals.
package pysource
