package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"htask/internal/commands"
	"htask/internal/config"
	"htask/internal/exitcode"
	"htask/internal/service"
	"htask/internal/testutil"
)

func fakeFactory(f *testutil.FakeService) ServiceFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return f, nil
	}
}

func run(t *testing.T, factory ServiceFactory, args ...string) (int, string, string) {
	t.Helper()
	d := NewDispatcher(commands.DefaultRegistry, factory)
	var out, errOut bytes.Buffer
	code := d.Run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunUnknownCommand(t *testing.T) {
	code, _, errOut := run(t, nil, "frobnicate")
	assert.Equal(t, exitcode.UserError, code)
	assert.Contains(t, errOut, "unknown command: frobnicate")
}

func TestRunFlagBeforeCommand(t *testing.T) {
	code, _, errOut := run(t, nil, "--quiet", "list")
	assert.Equal(t, exitcode.UserError, code)
	assert.Contains(t, errOut, "unknown command: --quiet")
}

func TestRunVersion(t *testing.T) {
	code, out, _ := run(t, nil, "version")
	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "htask 0.1.0\n", out)
}

func TestRunHelp(t *testing.T) {
	code, out, _ := run(t, nil, "help")
	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, out, "Usage:")
}

func TestRunNoArgsListsActiveTasks(t *testing.T) {
	f := testutil.NewFakeService()
	code, out, _ := run(t, fakeFactory(f))
	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "no tasks found\n", out)
}

func TestRunCommandAlias(t *testing.T) {
	f := testutil.NewFakeService()
	f.AddTask(service.Task{Text: "x"})

	code, out, _ := run(t, fakeFactory(f), "complete", "1")
	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "ok\n", out)

	task, err := f.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, task.Completed)
}

func TestRunQuietFlag(t *testing.T) {
	f := testutil.NewFakeService()
	f.AddTask(service.Task{Text: "x"})

	code, out, _ := run(t, fakeFactory(f), "done", "--quiet", "1")
	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, out)
}

func TestRunUnknownFlag(t *testing.T) {
	code, _, errOut := run(t, fakeFactory(testutil.NewFakeService()), "list", "--color")
	assert.Equal(t, exitcode.UserError, code)
	assert.Contains(t, errOut, "unknown flag: -color")
}

func TestRunFactoryAuthFailure(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return nil, fmt.Errorf("%w: no stored session", service.ErrUnauthorized)
	}
	code, _, errOut := run(t, factory, "list")
	assert.Equal(t, exitcode.AuthError, code)
	assert.Contains(t, errOut, "auth error")
}

func TestRunFactoryBackendFailure(t *testing.T) {
	// Error kind decides the class, not the message text.
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return nil, errors.New("post /oauth/token: connection refused")
	}
	code, _, errOut := run(t, factory, "list")
	assert.Equal(t, exitcode.BackendError, code)
	assert.Contains(t, errOut, "backend error")
}

func TestRunVersionSkipsFactory(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		t.Fatal("factory must not be called for unauthenticated commands")
		return nil, nil
	}
	code, _, _ := run(t, factory, "version")
	assert.Equal(t, exitcode.Success, code)
}
