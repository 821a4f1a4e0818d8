package jig_test

import (
	"bytes"
	"os"
	"syscall"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/pkg/jig"
)

func newTestApp(t *testing.T) (*jig.App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	deploy := jig.Command{
		Description: "Deploy the service",
		Run: func(ctx jig.Context) error {
			fs := pflag.NewFlagSet("deploy", pflag.ContinueOnError)
			fs.SetOutput(&bytes.Buffer{})
			target := fs.String("target", "staging", "")
			if err := ctx.ParseFlags(fs); err != nil {
				return err
			}
			_, err := ctx.Stdout.Write([]byte("deploying to " + *target + "\n"))
			return err
		},
	}

	app := jig.NewApp("jigapp", jig.NewGroup("ops").Add("deployService", deploy)).
		Add("greetUser", jig.Command{
			Description: "Greet",
			Run: func(ctx jig.Context) error {
				_, err := ctx.Stdout.Write([]byte("hello " + ctx.RunDirectory + "\n"))
				return err
			},
		}).
		Add("fail", jig.Command{Run: func(jig.Context) error { return os.ErrPermission }})
	app.SetOutput(bytes.NewReader(nil), &stdout, &stderr)
	return app, &stdout, &stderr
}

func TestApp_List(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	code := app.Execute(t.Context(), []string{"list", "--case-converting-strategy", "kebab"})
	assert.Equal(t, jig.ExitSuccess, code)
	assert.Equal(t, "jigapp:\n * fail\n * greet-user - Greet\n\nops:\n * deploy-service - Deploy the service\n", stdout.String())
}

func TestApp_ListJSON(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	code := app.Execute(t.Context(), []string{"list", "--json"})
	assert.Equal(t, jig.ExitSuccess, code)
	assert.JSONEq(t, `{"groups": {
		"jigapp": [{"name": "fail", "description": null}, {"name": "greetUser", "description": "Greet"}],
		"ops": [{"name": "deployService", "description": "Deploy the service"}]
	}}`, stdout.String())
}

func TestApp_Run(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	code := app.Execute(t.Context(), []string{"run", "--run-directory", "/somewhere", "greetUser"})
	assert.Equal(t, jig.ExitSuccess, code)
	assert.Equal(t, "hello /somewhere\n", stdout.String())
}

func TestApp_RunPassesArgumentsUntouched(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	code := app.Execute(t.Context(), []string{"run", "--case-converting-strategy", "snake", "deploy_service", "--target", "prod"})
	assert.Equal(t, jig.ExitSuccess, code)
	assert.Equal(t, "deploying to prod\n", stdout.String())
}

func TestApp_RunByAlias(t *testing.T) {
	app, stdout, _ := newTestApp(t)

	code := app.Execute(t.Context(), []string{"run", "--case-converting-strategy", "snake", "ds"})
	assert.Equal(t, jig.ExitSuccess, code)
	assert.Equal(t, "deploying to staging\n", stdout.String())
}

func TestApp_ExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		stderr string
	}{
		{name: "not found", args: []string{"run", "greetUsr"}, code: jig.ExitCommandNotFound, stderr: "did you mean greetUser?"},
		{name: "run failed", args: []string{"run", "fail"}, code: jig.ExitRunFailed, stderr: `command "fail" failed`},
		{name: "argument parsing", args: []string{"run", "deployService", "--nope"}, code: jig.ExitArgumentParsing, stderr: "failed to parse command arguments"},
		{name: "invalid strategy", args: []string{"list", "--case-converting-strategy", "camel"}, code: jig.ExitUnexpected, stderr: "case"},
		{name: "missing command", args: []string{"run"}, code: jig.ExitUnexpected, stderr: "arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, stderr := newTestApp(t)

			code := app.Execute(t.Context(), tt.args)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr.String(), tt.stderr)
		})
	}
}

func TestApp_DuplicateCommand(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var stderr bytes.Buffer
	app := jig.NewApp("jigapp", jig.NewGroup("extra").Add("command3", jig.Command{})).
		Add("command3", jig.Command{})
	app.SetOutput(bytes.NewReader(nil), &bytes.Buffer{}, &stderr)

	code := app.Execute(t.Context(), []string{"list"})
	assert.Equal(t, jig.ExitDuplicateCommand, code)
	assert.Contains(t, stderr.String(), `duplicate command name "command3"`)
}

func TestApp_Interrupt(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	started := make(chan struct{})
	cleaned := make(chan struct{})

	app := jig.NewApp("jigapp").Add("serve", jig.Command{
		Run: func(ctx jig.Context) error {
			ctx.Interruption.OnInterrupt(func() { close(cleaned) })
			close(started)
			<-ctx.Done()
			return ctx.Err()
		},
	})
	app.SetOutput(bytes.NewReader(nil), &bytes.Buffer{}, &bytes.Buffer{})

	signals := make(chan os.Signal, 1)
	app.SetSignals(signals)

	go func() {
		<-started
		signals <- syscall.SIGINT
	}()

	code := app.Execute(t.Context(), []string{"run", "serve"})
	assert.Equal(t, 130, code)

	select {
	case <-cleaned:
	default:
		require.Fail(t, "interrupt callback did not run before exit")
	}
}
