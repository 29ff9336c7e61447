package model

import (
	"context"
	"errors"

	"exemplarcheck/pkg/core"
)

// ErrUnsupportedInterface is returned by Adapt when the supplied client
// exposes none of the recognized calling conventions.
var ErrUnsupportedInterface = errors.New("model: unsupported LLM interface")

// Responder is the respond-style convention returning a full response.
type Responder interface {
	Respond(ctx context.Context, prompt string) (core.Response, error)
}

// TextResponder is the respond-style convention returning a plain string.
type TextResponder interface {
	Respond(ctx context.Context, prompt string) (string, error)
}

// Predictor is the predict-style convention.
type Predictor interface {
	Predict(ctx context.Context, prompt string) (string, error)
}

// Func adapts a bare callable returning plain text.
type Func func(ctx context.Context, prompt string) (string, error)

// ResponseFunc adapts a bare callable returning a full response.
type ResponseFunc func(ctx context.Context, prompt string) (core.Response, error)

type namer interface {
	Name() string
}

// Adapt normalizes whatever calling convention the client exposes into a
// core.Model. Detection order: already a Model, respond-style (response
// object, then plain string), predict-style, bare callable. The core
// depends only on core.Model; this sniffing stays at the boundary.
func Adapt(client any) (core.Model, error) {
	switch c := client.(type) {
	case core.Model:
		return c, nil
	case Responder:
		return responderModel{client: c, name: clientName(client)}, nil
	case TextResponder:
		return textResponderModel{client: c, name: clientName(client)}, nil
	case Predictor:
		return predictorModel{client: c, name: clientName(client)}, nil
	case Func:
		return funcModel{fn: c}, nil
	case func(ctx context.Context, prompt string) (string, error):
		return funcModel{fn: c}, nil
	case ResponseFunc:
		return responseFuncModel{fn: c}, nil
	case func(ctx context.Context, prompt string) (core.Response, error):
		return responseFuncModel{fn: c}, nil
	}
	return nil, ErrUnsupportedInterface
}

func clientName(client any) string {
	if n, ok := client.(namer); ok {
		return n.Name()
	}
	return "adapted"
}

type responderModel struct {
	client Responder
	name   string
}

func (m responderModel) Name() string {
	return m.name
}

func (m responderModel) Generate(ctx context.Context, prompt string, _ core.GenerateOptions) (core.Response, error) {
	return m.client.Respond(ctx, prompt)
}

type textResponderModel struct {
	client TextResponder
	name   string
}

func (m textResponderModel) Name() string {
	return m.name
}

func (m textResponderModel) Generate(ctx context.Context, prompt string, _ core.GenerateOptions) (core.Response, error) {
	text, err := m.client.Respond(ctx, prompt)
	if err != nil {
		return core.Response{}, err
	}
	return core.Response{Content: text}, nil
}

type predictorModel struct {
	client Predictor
	name   string
}

func (m predictorModel) Name() string {
	return m.name
}

func (m predictorModel) Generate(ctx context.Context, prompt string, _ core.GenerateOptions) (core.Response, error) {
	text, err := m.client.Predict(ctx, prompt)
	if err != nil {
		return core.Response{}, err
	}
	return core.Response{Content: text}, nil
}

type funcModel struct {
	fn Func
}

func (m funcModel) Name() string {
	return "func"
}

func (m funcModel) Generate(ctx context.Context, prompt string, _ core.GenerateOptions) (core.Response, error) {
	text, err := m.fn(ctx, prompt)
	if err != nil {
		return core.Response{}, err
	}
	return core.Response{Content: text}, nil
}

type responseFuncModel struct {
	fn ResponseFunc
}

func (m responseFuncModel) Name() string {
	return "func"
}

func (m responseFuncModel) Generate(ctx context.Context, prompt string, _ core.GenerateOptions) (core.Response, error) {
	return m.fn(ctx, prompt)
}
