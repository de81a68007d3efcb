// Package testutils provides HTTP test helpers shared by the api and server tests.
package testutils
