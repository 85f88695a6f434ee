package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/tessero/recommend-go/internal/render"
)

// EventTemplate renders one recommendation into a markup fragment. When
// supplied to a render call it fully replaces the default card and is
// invoked once per item, in list order. Its output is not validated.
type EventTemplate func(Event) string

// SimilarEventTemplate is the custom-template counterpart for
// similar-event renders.
type SimilarEventTemplate func(SimilarEvent) string

// RenderRecommendations fetches recommendations (with the anonymous
// cold-start fallback of GetRecommendations) and renders them into
// target. Target is either a selector string resolved against the
// configured document, or a render.Surface. The pipeline writes a
// loading placeholder, then either the rendered cards, an empty-state
// placeholder, or an error placeholder; it fires a view interaction per
// rendered item and binds a click interaction per item when the surface
// supports activation.
func (c *Client) RenderRecommendations(ctx context.Context, target any, opts Options, tmpl EventTemplate) RenderResult {
	surface := c.resolveTarget(target)
	if surface == nil {
		return RenderResult{Result: failure("Container element not found")}
	}
	return c.renderInto(ctx, surface, func() ([]itemMarkup, error) {
		res := c.GetRecommendations(ctx, opts)
		if !res.Success {
			return nil, errors.New(res.Error)
		}
		frags := make([]itemMarkup, 0, len(res.Recommendations))
		for _, ev := range res.Recommendations {
			html, err := renderEvent(ev, tmpl)
			if err != nil {
				return nil, err
			}
			frags = append(frags, itemMarkup{id: ev.EventID.String(), html: html})
		}
		return frags, nil
	})
}

// RenderSimilarEvents fetches events similar to eventID and renders
// them into target under the same pipeline as RenderRecommendations.
// Only opts.Count is meaningful here; a non-positive count selects the
// server default of 5.
func (c *Client) RenderSimilarEvents(ctx context.Context, eventID string, target any, opts Options, tmpl SimilarEventTemplate) RenderResult {
	surface := c.resolveTarget(target)
	if surface == nil {
		return RenderResult{Result: failure("Container element not found")}
	}
	return c.renderInto(ctx, surface, func() ([]itemMarkup, error) {
		res := c.GetSimilarEvents(ctx, eventID, opts.Count)
		if !res.Success {
			return nil, errors.New(res.Error)
		}
		frags := make([]itemMarkup, 0, len(res.SimilarEvents))
		for _, ev := range res.SimilarEvents {
			html, err := renderSimilarEvent(ev, tmpl)
			if err != nil {
				return nil, err
			}
			frags = append(frags, itemMarkup{id: ev.EventID.String(), html: html})
		}
		return frags, nil
	})
}

type itemMarkup struct {
	id   string
	html string
}

// resolveTarget maps a render target to its surface, or nil when the
// target cannot be resolved. Resolution happens before any network or
// surface write.
func (c *Client) resolveTarget(target any) render.Surface {
	switch t := target.(type) {
	case render.Surface:
		return t
	case string:
		if c.doc != nil {
			if el := c.doc.Lookup(t); el != nil {
				return el
			}
		}
	}
	return nil
}

// renderInto runs the shared loading/fetch/render/track protocol. Any
// error or panic between the loading write and tracking overwrites the
// surface with the error placeholder and becomes a failure envelope;
// nothing escapes to the caller.
func (c *Client) renderInto(ctx context.Context, surface render.Surface, build func() ([]itemMarkup, error)) (result RenderResult) {
	renderID := uuid.NewString()
	defer func() {
		if p := recover(); p != nil {
			surface.SetContent(render.ErrorHTML)
			c.logger.Error("render panicked",
				slog.String("render_id", renderID),
				slog.Any("panic", p),
			)
			result = RenderResult{Result: failure(fmt.Sprint(p))}
		}
	}()

	surface.SetContent(render.LoadingHTML)

	items, err := build()
	if err != nil {
		surface.SetContent(render.ErrorHTML)
		c.logger.Error("render failed",
			slog.String("render_id", renderID),
			slog.String("error", err.Error()),
		)
		return RenderResult{Result: failure(err.Error())}
	}

	if len(items) == 0 {
		surface.SetContent(render.EmptyHTML)
		return RenderResult{Result: ok()}
	}

	var sb strings.Builder
	for _, it := range items {
		sb.WriteString(it.html)
	}
	surface.SetContent(sb.String())

	c.trackImpressions(ctx, surface, items)

	c.logger.Debug("render completed",
		slog.String("render_id", renderID),
		slog.Int("count", len(items)),
	)
	return RenderResult{Result: ok(), Count: len(items)}
}

// trackImpressions fires one view interaction per rendered item and,
// when the surface supports activation, binds a click interaction per
// item. Both are fire-and-forget: failures (including the anonymous
// no-op) are logged, never surfaced.
func (c *Client) trackImpressions(ctx context.Context, surface render.Surface, items []itemMarkup) {
	activator, _ := surface.(render.Activator)
	// Click handlers outlive the render call.
	clickCtx := context.WithoutCancel(ctx)
	for _, it := range items {
		if res := c.RecordInteraction(ctx, it.id, "view", 0); !res.Success {
			c.logger.Debug("view interaction skipped",
				slog.String("event_id", it.id),
				slog.String("reason", res.Error),
			)
		}
		if activator == nil {
			continue
		}
		eventID := it.id
		activator.OnActivate(eventID, func() {
			if res := c.RecordInteraction(clickCtx, eventID, "click", 0); !res.Success {
				c.logger.Debug("click interaction skipped",
					slog.String("event_id", eventID),
					slog.String("reason", res.Error),
				)
			}
		})
	}
}

func renderEvent(ev Event, tmpl EventTemplate) (string, error) {
	if tmpl != nil {
		return tmpl(ev), nil
	}
	return render.EventCard(ev)
}

func renderSimilarEvent(ev SimilarEvent, tmpl SimilarEventTemplate) (string, error) {
	if tmpl != nil {
		return tmpl(ev), nil
	}
	return render.SimilarEventCard(ev)
}
