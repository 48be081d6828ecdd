package agents

import (
	"context"
	"log"
	"time"

	apperr "notion-agent/internal/errors"
	"notion-agent/internal/storage"
)

// Coordinator wires the router to the two handler agents through an
// explicit intent dispatch table and records every processed
// instruction when a recorder is configured.
type Coordinator struct {
	router   *Router
	dispatch map[Intent]func(ctx context.Context, instruction string) (Result, error)
	recorder storage.Recorder
}

func NewCoordinator(router *Router, pageAgent *PageAgent, blockAgent *BlockAgent, defaultPageID string, recorder storage.Recorder) *Coordinator {
	c := &Coordinator{
		router:   router,
		recorder: recorder,
	}
	c.dispatch = map[Intent]func(ctx context.Context, instruction string) (Result, error){
		IntentPage: pageAgent.Handle,
		IntentBlock: func(ctx context.Context, instruction string) (Result, error) {
			return blockAgent.Handle(ctx, defaultPageID, instruction)
		},
	}
	return c
}

// Process runs one instruction to completion: classify, dispatch,
// record. Instructions are handled strictly sequentially by the callers.
func (c *Coordinator) Process(ctx context.Context, surface string, chatID int64, instruction string) (Result, error) {
	intent, err := c.router.Classify(ctx, instruction)
	if err != nil {
		c.record(surface, chatID, instruction, intent, Result{}, err)
		return Result{}, err
	}

	handler, ok := c.dispatch[intent]
	if !ok {
		// unreachable as long as Classify only returns mapped intents
		routeErr := apperr.NewRouting("no handler for intent %s", intent)
		c.record(surface, chatID, instruction, intent, Result{}, routeErr)
		return Result{}, routeErr
	}

	result, err := handler(ctx, instruction)
	c.record(surface, chatID, instruction, intent, result, err)
	return result, err
}

func (c *Coordinator) record(surface string, chatID int64, instruction string, intent Intent, result Result, procErr error) {
	if c.recorder == nil {
		return
	}
	ev := storage.Event{
		Timestamp:   time.Now().UTC(),
		Surface:     surface,
		ChatID:      chatID,
		Instruction: instruction,
		Intent:      intent.String(),
		ToolCalls:   result.ToolCalls,
		Response:    result.Message,
	}
	if procErr != nil {
		ev.Error = procErr.Error()
	}
	if err := c.recorder.AppendInteraction(ev); err != nil {
		log.Printf("failed to record interaction: %v", err)
	}
}
