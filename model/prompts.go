package model

import (
	"fmt"
	"strings"
)

const DefaultSubject = "Diego Beuk"

// Prompts renders the canned texts that mention the person being showcased.
type Prompts struct {
	Subject string
}

func (p Prompts) subject() string {
	if s := strings.TrimSpace(p.Subject); s != "" {
		return s
	}
	return DefaultSubject
}

// FirstName is the first word of the subject's name.
func (p Prompts) FirstName() string {
	return strings.Fields(p.subject())[0]
}

func (p Prompts) Welcome() string {
	return fmt.Sprintf("Welcome! I'm here to help showcase %s's professional journey and skills!\n\n"+
		"Type \"help\" to see available commands, or just start chatting!", p.subject())
}

func (p Prompts) Help() string {
	first := p.FirstName()
	return fmt.Sprintf(`
1. help                                 - Show a numbered list of available commands
2. spin-profile                         - Generate a quick summary of %[1]s's professional journey
3. amplify <skill>                      - Expand on a specific skill with examples
4. career-mix-analysis <job role>       - Compare %[1]s's skills with a target job role
5. chat <message>                       - Ask anything about %[1]s's career
6. ingest                               - Load the career documents into the knowledge base
7. status                               - Check backend, database and document status
8. clear                                - Clear terminal
9. exit                                 - Quit

💡 Tip: You can also just type naturally - I'll help you explore %[1]s's career journey!`, first)
}

func (p Prompts) SpinProfile() string {
	return fmt.Sprintf("Generate a recruiter-ready summary of %s's profile - short, catchy, and impactful. "+
		"Focus on his key strengths, achievements, and what makes him stand out to employers.", p.subject())
}

func (p Prompts) Amplify(skill string) string {
	return fmt.Sprintf("Expand on %s's %s skills with measurable examples and impact statements. "+
		"Show specific achievements and how this skill has contributed to his professional growth.", p.FirstName(), skill)
}

func (p Prompts) CareerMix(role string) string {
	return fmt.Sprintf("Compare %s's experiences and skills with the %s role. "+
		"Identify his strengths, potential gaps, and how his unique background could be an advantage for this position.", p.FirstName(), role)
}
