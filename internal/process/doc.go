// Package process tears down the headless browser a paginator launched.
package process
