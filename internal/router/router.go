package router

import (
	"context"
	"fmt"
	"strings"

	"restaurant-bot/internal/classifier"
	"restaurant-bot/internal/model"
	"restaurant-bot/internal/reply"
)

// Route resolves text for clientID. A non-empty requestedAlgo must name a
// loaded classifier, otherwise ErrInvalidAlgorithm is returned and the
// session is left untouched.
func (r *Router) Route(ctx context.Context, clientID, text, requestedAlgo string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		routesTotal.WithLabelValues(SourceEmpty, string(model.IntentFallback)).Inc()
		return Result{
			Intent:     model.IntentFallback,
			Confidence: EmptyConfidence,
			Reply:      reply.Empty(),
			Source:     SourceEmpty,
		}, nil
	}

	requested := classifier.NormalizeID(requestedAlgo)
	if requested != "" {
		if _, err := r.classifiers.Validate(requested); err != nil {
			r.l.Warnf(ctx, "%s: %v", LogPrefixRoute, err)
			return Result{}, err
		}
	}

	s, err := r.store.Get(ctx, clientID)
	if err != nil {
		r.l.Errorf(ctx, "%s: store.Get: %v", LogPrefixRoute, err)
		return Result{}, fmt.Errorf("%s: %w", LogPrefixRoute, err)
	}

	h, err := r.classifiers.Resolve(requested, s.PreferredAlgo)
	if err != nil {
		return Result{}, err
	}
	if requested == "" && s.PreferredAlgo != "" && h.ID != classifier.NormalizeID(s.PreferredAlgo) {
		r.l.Warnf(ctx, "%s: stored algo %q not loaded, using %s", LogPrefixRoute, s.PreferredAlgo, h.ID)
	}

	res := Result{Algo: h.ID}
	forced := false

	switch turn, ok := r.machine.Intercept(&s, text); {
	case ok && turn.Reply != nil:
		res.Intent, res.Confidence, res.Source = turn.Intent, turn.Confidence, string(turn.Source)
		res.Reply = *turn.Reply
	case ok:
		res.Intent, res.Confidence, res.Source = turn.Intent, turn.Confidence, string(turn.Source)
		forced = turn.Forced()
	default:
		res.Intent, res.Confidence, res.Source = r.classify(ctx, h, text)
	}

	if res.Reply.Text == "" {
		res.Reply = r.replies.Render(res.Intent, text)
		r.machine.Apply(&s, res.Reply.Signal, forced)
	}

	if err := r.store.Save(ctx, s); err != nil {
		r.l.Errorf(ctx, "%s: store.Save: %v", LogPrefixRoute, err)
		return Result{}, fmt.Errorf("%s: %w", LogPrefixRoute, err)
	}

	routesTotal.WithLabelValues(res.Source, string(res.Intent)).Inc()
	r.l.Debugf(ctx, "%s: client=%s intent=%s confidence=%.3f algo=%s source=%s",
		LogPrefixRoute, clientID, res.Intent, res.Confidence, res.Algo, res.Source)
	return res, nil
}

// classify runs the rules and, when none match, the classifier and the gate.
func (r *Router) classify(ctx context.Context, h classifier.Handle, text string) (model.Intent, float64, string) {
	if m, ok := r.rules.Classify(text); ok {
		return m.Intent, m.Confidence, sourceRulePrefix + m.Rule
	}

	label, p := h.Infer(text)
	intent, conf := Gate(model.Intent(label), p, r.threshold)
	if intent != model.Intent(label) {
		gatedTotal.WithLabelValues(h.ID).Inc()
		r.l.Debugf(ctx, "%s: %s predicted %s at %.3f, below %.2f", LogPrefixClassifier, h.ID, label, p, r.threshold)
	}
	return intent, conf, SourceClassifier
}

// SetPreferredAlgo stores algo as the client's classifier preference and
// returns its canonical id.
func (r *Router) SetPreferredAlgo(ctx context.Context, clientID, algo string) (string, error) {
	id, err := r.classifiers.Validate(algo)
	if err != nil {
		return "", err
	}

	s, err := r.store.Get(ctx, clientID)
	if err != nil {
		r.l.Errorf(ctx, "%s: store.Get: %v", LogPrefixSetAlgo, err)
		return "", fmt.Errorf("%s: %w", LogPrefixSetAlgo, err)
	}
	s.PreferredAlgo = id
	if err := r.store.Save(ctx, s); err != nil {
		r.l.Errorf(ctx, "%s: store.Save: %v", LogPrefixSetAlgo, err)
		return "", fmt.Errorf("%s: %w", LogPrefixSetAlgo, err)
	}

	r.l.Infof(ctx, "%s: client=%s algo=%s", LogPrefixSetAlgo, clientID, id)
	return id, nil
}

// Reset forgets the client's session.
func (r *Router) Reset(ctx context.Context, clientID string) error {
	if err := r.store.Delete(ctx, clientID); err != nil {
		r.l.Errorf(ctx, "%s: store.Delete: %v", LogPrefixReset, err)
		return fmt.Errorf("%s: %w", LogPrefixReset, err)
	}
	return nil
}

// Algorithms lists the loaded classifiers and the process default.
func (r *Router) Algorithms() Algorithms {
	return Algorithms{
		Available: r.classifiers.IDs(),
		Default:   r.classifiers.DefaultID(),
	}
}
