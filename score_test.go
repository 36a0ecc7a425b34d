package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"cheongyak-calculator/domain"
	"cheongyak-calculator/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScore(t *testing.T) {
	var out bytes.Buffer
	err := runScore(context.Background(), &out, &scoreFlags{
		form: domain.ScoreForm{
			BirthDate:        "1980-01-01",
			HomelessYears:    "16",
			Dependents:       "6",
			SubscriptionDate: "2010-01-01",
		},
		now: "2026-10-14",
	})
	require.NoError(t, err)

	var result domain.ScoreResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, 84, result.TotalScore)
	assert.Equal(t, domain.TierHigh, result.Tier)
}

func TestRunScore_ValidationExitCode(t *testing.T) {
	err := runScore(context.Background(), &bytes.Buffer{}, &scoreFlags{
		form: domain.ScoreForm{
			BirthDate:        "2000-01-01",
			HomelessYears:    "1",
			Dependents:       "0",
			SubscriptionDate: "2000-01-01",
		},
	})

	var ee *exitErr
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 2, ee.code)
	assert.Equal(t, service.MessageDateOrderViolation, ee.msg)
}

func TestRunScore_BadNow(t *testing.T) {
	err := runScore(context.Background(), &bytes.Buffer{}, &scoreFlags{now: "yesterday"})

	var ee *exitErr
	require.True(t, errors.As(err, &ee))
	assert.Contains(t, ee.msg, "--now")
}
