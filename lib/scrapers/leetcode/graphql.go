package leetcode

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrAuthDenied is returned when a response has the shape of an
// unauthenticated session. Callers are expected to invalidate the cookie
// bundle and re-login.
var ErrAuthDenied = fmt.Errorf("remote responded with an authentication-denied shape")

func serializeGraphqlQueryObject(name, query string, variables map[string]any) (string, error) {
	escapedName, err := json.Marshal(name)
	if err != nil {
		return "", err
	}
	escapedQuery, err := json.Marshal(query)
	if err != nil {
		return "", err
	}
	jsonVariables, err := json.Marshal(variables)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		`{"operationName": %s, "query": %s, "variables": %s}`,
		escapedName,
		escapedQuery,
		jsonVariables,
	), nil
}

// deserializeGraphqlResponseObject decodes the `data` root of a graphql
// response into out. Fields missing from the response decode to zero
// values, callers branch on nil instead of crashing on absent paths.
func deserializeGraphqlResponseObject(response []byte, out any) error {
	var result struct {
		Data json.RawMessage `json:"data"`
	}

	err := json.Unmarshal(response, &result)
	if err != nil {
		return err
	}
	if len(result.Data) == 0 || string(result.Data) == "null" {
		return nil
	}
	return json.Unmarshal(result.Data, out)
}

// graphql executes one request/response query exchange with the current
// session's credentials attached. Transport failures propagate to the
// caller, there is no automatic retry.
func (c *Client) graphql(ctx context.Context, name, query string, variables map[string]any, out any) error {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("graphql:%s", name))
	defer span.End()

	span.SetAttributes(attribute.String("name", name))
	serialized, err := json.Marshal(variables)
	if err == nil {
		span.SetAttributes(attribute.String("variables", string(serialized)))
	}

	body, err := serializeGraphqlQueryObject(name, query, variables)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to serialize json query")
		return err
	}

	res, err := c.Http.R().
		SetContext(ctx).
		SetHeader("content-type", "application/json").
		SetBody(body).
		Post("/graphql")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return err
	}

	err = deserializeGraphqlResponseObject(res.Body(), out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return err
	}

	return nil
}
