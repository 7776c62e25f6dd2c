// Package demo registers a small set of sample commands used by the console
// binary and its tests.
package demo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"uniconsole/internal/commands"
)

// Mode is the engine mode accepted by Engine.setMode.
var Mode = commands.NewEnum("Mode", "Fast", "Slow")

// ErrDivideByZero is returned by Math.divide.
var ErrDivideByZero = errors.New("division by zero")

// maxSleep bounds Diagnostics.sleep.
const maxSleep = 60 * time.Second

// Engine holds the state changed by Engine.setMode.
type Engine struct {
	mode commands.EnumValue
}

// Mode returns the current mode name, empty until set.
func (e *Engine) Mode() string {
	return e.mode.Name
}

// Source returns the sample commands. engine may be nil.
func Source(engine *Engine) commands.Source {
	if engine == nil {
		engine = &Engine{}
	}
	return commands.StaticSource{
		{
			Group:       "Diagnostics",
			Name:        "ping",
			Description: "Replies with pong",
			Run: func(context.Context, []any) (any, error) {
				return "pong", nil
			},
		},
		{
			Group:       "Diagnostics",
			Name:        "echo",
			Params:      []commands.ParamType{commands.String},
			Description: "Prints its argument",
			Run: func(_ context.Context, args []any) (any, error) {
				return args[0], nil
			},
		},
		{
			Group:       "Diagnostics",
			Name:        "flag",
			Params:      []commands.ParamType{commands.Bool},
			Description: "Prints a boolean",
			Run: func(_ context.Context, args []any) (any, error) {
				return fmt.Sprintf("flag is %t", args[0].(bool)), nil
			},
		},
		{
			Group:       "Diagnostics",
			Name:        "sleep",
			Params:      []commands.ParamType{commands.Int},
			Description: "Waits for the given number of milliseconds in the background",
			Run: func(_ context.Context, args []any) (any, error) {
				ms := args[0].(int)
				if ms < 0 || int64(ms) > maxSleep.Milliseconds() {
					return nil, fmt.Errorf("sleep must be between 0 and %d ms", maxSleep.Milliseconds())
				}
				d := time.Duration(ms) * time.Millisecond
				return commands.Async(func(ctx context.Context) (any, error) {
					t := time.NewTimer(d)
					defer t.Stop()
					select {
					case <-t.C:
						return fmt.Sprintf("slept %s", d), nil
					case <-ctx.Done():
						return nil, ctx.Err()
					}
				}), nil
			},
		},
		{
			Group:       "Math",
			Name:        "add",
			Params:      []commands.ParamType{commands.Int, commands.Int},
			Description: "Adds two integers",
			Run: func(_ context.Context, args []any) (any, error) {
				return args[0].(int) + args[1].(int), nil
			},
		},
		{
			Group:       "Math",
			Name:        "divide",
			Params:      []commands.ParamType{commands.Float, commands.Float},
			Description: "Divides the first number by the second",
			Run: func(_ context.Context, args []any) (any, error) {
				b := args[1].(float64)
				if b == 0 {
					return nil, ErrDivideByZero
				}
				return args[0].(float64) / b, nil
			},
		},
		{
			Group:       "Engine",
			Name:        "setMode",
			Params:      []commands.ParamType{commands.EnumOf(Mode)},
			Description: "Switches the engine mode",
			Run: func(_ context.Context, args []any) (any, error) {
				engine.mode = args[0].(commands.EnumValue)
				return "Mode set to " + engine.mode.Name, nil
			},
		},
		{
			Group:       "Audio",
			Name:        "reset",
			Description: "Resets the audio subsystem",
			Run: func(context.Context, []any) (any, error) {
				return "audio reset", nil
			},
		},
		{
			Group:       "Video",
			Name:        "reset",
			Description: "Resets the video subsystem",
			Run: func(context.Context, []any) (any, error) {
				return "video reset", nil
			},
		},
	}
}
