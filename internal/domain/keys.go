package domain

// Keys read from and written back into a Profile during generation.
const (
	KeyGitHubUsername = "github_username"
	KeyGitHubURL      = "github"

	KeySkills    = "skills"
	KeyTechStack = "tech_stack"

	KeySkillsBlock = "skills_list"
	KeyTechBadges  = "tech_badges"
)

// Boolean toggles. Both default to true when absent.
const (
	FlagShowIcons = "show_icons"
	FlagShowStats = "show_stats"
)
