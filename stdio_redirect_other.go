//go:build !unix

package main

func redirectStdIO(path string) error { return nil }
