// Package registry provides a generic, ordered, fixed-capacity registry
// for named items. Items keep their registration order, lookups are a
// linear scan, and a registry can be frozen once its owner starts using it.
package registry
