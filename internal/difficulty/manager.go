package difficulty

import "github.com/abiral/fluency/internal/student"

// Manager tracks the active difficulty tier, recomputed from a rolling
// window of recent answers.
type Manager struct {
	cfg     DynamicConfig
	current int // index into cfg.Configs
}

// NewManager creates a manager starting at the most permissive tier
// (lowest MinAccuracy).
func NewManager(cfg DynamicConfig) *Manager {
	cfg.Configs = sortConfigs(cfg.Configs)
	return &Manager{cfg: cfg, current: 0}
}

// Current returns the active tier's full config. All downstream
// thresholds and limits are read from it, never cached separately.
func (m *Manager) Current() Config {
	return m.cfg.Configs[m.current]
}

// UpdateDifficulty recomputes the tier from answers. Fewer than
// MinAnswersForChange answers is a no-op. Otherwise the accuracy over
// the last RecentAnswerWindow answers selects the highest-threshold
// tier whose MinAccuracy it meets, making the selection monotonic in
// accuracy and idempotent on repeated identical input.
func (m *Manager) UpdateDifficulty(answers []student.AnswerRecord) {
	if len(answers) < m.cfg.MinAnswersForChange {
		return
	}

	window := answers
	if m.cfg.RecentAnswerWindow > 0 && len(window) > m.cfg.RecentAnswerWindow {
		window = window[len(window)-m.cfg.RecentAnswerWindow:]
	}

	correct := 0
	for _, a := range window {
		if a.Type == student.AnswerCorrect {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(window))

	// Configs are sorted ascending, so the last qualifying index is
	// the highest qualifying threshold.
	selected := 0
	for i, c := range m.cfg.Configs {
		if c.MinAccuracy <= accuracy {
			selected = i
		}
	}
	m.current = selected
}
