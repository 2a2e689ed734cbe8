// Package instanceio loads the file-list triplet that drives a training
// run: the base path file and the training/validation instance manifests.
// Parsing of an individual instance file is instance.Load; this package
// only resolves which files to load.
package instanceio
