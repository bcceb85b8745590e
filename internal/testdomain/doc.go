// Package testdomain provides enumerations of various sizes for use in tests.
package testdomain
