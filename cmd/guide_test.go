package cmd

import "testing"

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("guide")
		env.contains(out, "# ffind")
		env.contains(out, "## Commands")
	})

	t.Run("lists available on not found", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("guide", "nonexistent", "-o", "json")
		if err == nil {
			t.Error("guide nonexistent succeeded, want error")
		}
		env.contains(out, "Available: config, find, grep")
	})
}

func TestGuide_Topics(t *testing.T) {
	for _, topic := range []string{"find", "grep", "config"} {
		t.Run(topic, func(t *testing.T) {
			env := newTestEnv(t)
			out := env.run("guide", topic)
			env.contains(out, "# ffind "+topic)
		})
	}
}
