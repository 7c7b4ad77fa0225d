// Package types holds small generic helpers shared across boardfront.
package types
