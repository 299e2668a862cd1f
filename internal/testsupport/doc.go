// Package testsupport provides fixtures shared by package and CLI tests.
package testsupport
