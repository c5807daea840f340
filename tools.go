//go:build tools

package main

import _ "github.com/matryer/moq"
