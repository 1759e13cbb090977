// Package testutil holds helpers shared by package tests: throwaway stores,
// an Access wrapper that injects failures, and a renderer that records the
// signals it receives.
package testutil
