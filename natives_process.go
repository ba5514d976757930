package main

import (
	"bytes"
	"io"
	"os"
	"os/exec"

	"golang.org/x/sync/errgroup"
)

// processNatives implements the process operations: `args` `exit` `exec`
// `run`.
var processNatives = map[string]NativeFunc{
	"args": opArgs,
	"exit": opExit,
	"exec": opExec,
	"run":  opRun,
}

func opArgs(e *Engine) error {
	items := make([]Value, len(e.Argv))
	for i, a := range e.Argv {
		items[i] = Str(a)
	}
	return e.Stack.Push(Value{Kind: KindQuotation, Items: items})
}

func opExit(e *Engine) error {
	v, err := e.PopKind("exit", KindInt)
	if err != nil {
		return err
	}
	e.out.Flush()
	e.Close()
	os.Exit(int(v.Int))
	return nil
}

// shell returns the host shell invocation for a command string.
func shell(command string) *exec.Cmd {
	return exec.Command("/bin/sh", "-c", command)
}

func opExec(e *Engine) error {
	v, err := e.PopKind("exec", KindString)
	if err != nil {
		return err
	}
	cmd := shell(v.Str)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	status := exitStatus(cmd.Run())
	return e.Stack.Push(Int32(int32(status)))
}

// opRun implements `run`: it captures both standard streams and the exit
// status, draining stdout and stderr concurrently with errgroup.Group so
// neither pipe can fill up and deadlock the child while the other is being
// read (the classic cmd.StdoutPipe/StderrPipe hazard).
func opRun(e *Engine) error {
	v, err := e.PopKind("run", KindString)
	if err != nil {
		return err
	}
	cmd := shell(v.Str)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	var outBuf, errBuf bytes.Buffer
	var g errgroup.Group
	g.Go(func() error { _, err := io.Copy(&outBuf, stdout); return err })
	g.Go(func() error { _, err := io.Copy(&errBuf, stderr); return err })
	drainErr := g.Wait()

	status := exitStatus(cmd.Wait())
	if drainErr != nil && status == 0 {
		return drainErr
	}

	return e.Stack.Push(Value{Kind: KindQuotation, Items: []Value{
		Int32(int32(status)),
		Str(outBuf.String()),
		Str(errBuf.String()),
	}})
}

func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	return -1
}
