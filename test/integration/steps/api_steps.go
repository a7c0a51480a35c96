// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// registerAPISteps registers generic HTTP steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a GET request to "([^"]*)"$`, iSendAGETRequestTo)
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
}

func iSendAGETRequestTo(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.do(http.MethodGet, path, nil)
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.expectStatus(status)
}
