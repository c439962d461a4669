package main

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"3", "1, 2", ""})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, ids)

	ids, err = parseIDs(nil)
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = parseIDs([]string{"1,x"})
	assert.EqualError(t, err, `invalid campaign id "x"`)
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "migrate", "campaigns", "choose", "domain", "balance", "expenses", "oauth-token"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestChooseFlags(t *testing.T) {
	chosen, err := chooseCmd.Flags().GetBool("chosen")
	require.NoError(t, err)
	assert.True(t, chosen)
	assert.NotNil(t, chooseCmd.Flags().Lookup("domain"))
}

func TestWithAppHasNoOverallDeadline(t *testing.T) {
	prevOpen, prevTimeout := openApp, cfg.Direct.Timeout
	t.Cleanup(func() {
		openApp = prevOpen
		cfg.Direct.Timeout = prevTimeout
	})
	cfg.Direct.Timeout = 2 * time.Second
	openApp = func(context.Context, prometheus.Registerer) (*app, error) {
		return &app{}, nil
	}

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	called := false
	err := withApp(cmd, func(ctx context.Context, _ *app) error {
		called = true
		_, ok := ctx.Deadline()
		assert.False(t, ok)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
