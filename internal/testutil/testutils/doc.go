// Package helpers holds file system and git fixtures shared by the package tests.
package helpers
