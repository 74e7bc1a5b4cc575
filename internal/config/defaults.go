package config

// Default values for optional configuration parameters.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = false

	DefaultDBPath = "aidebot.db"
)

// defaultUsers reproduces the built-in simulation profiles used when no
// config file provides a users section.
func defaultUsers() []UserConfig {
	return []UserConfig{
		{Name: "Alice", Age: 30, Premium: true, Preferences: map[string]string{"mood": "happy"}, Assistant: "music"},
		{Name: "Bob", Age: 22, Preferences: map[string]string{"fitness_goal": "cardio"}, Assistant: "fitness"},
		{Name: "Carol", Age: 25, Preferences: map[string]string{"study_topic": "object-oriented programming"}, Assistant: "study"},
	}
}

// defaultScript reproduces the built-in simulated requests, paired with the
// default users in order.
func defaultScript() []ScriptStep {
	return []ScriptStep{
		{User: "Alice", Input: "Can you play some music for me?"},
		{User: "Bob", Input: "I want a workout plan"},
		{User: "Carol", Input: "Please help me schedule a study session"},
	}
}

// defaultTasks returns the scheduled task settings. Both tasks ship disabled
// so the demo stays a run-once program unless the operator opts in.
func defaultTasks() map[string]TaskConfig {
	return map[string]TaskConfig{
		"sql_maintenance": {Enabled: false, Schedule: "0 0 3 * * *"},
		"study_reminder":  {Enabled: false, Schedule: "0 */5 * * * *"},
	}
}
