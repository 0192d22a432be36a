// Package model holds the color types shared by patterns, the traversal and
// the output drivers.
package model
