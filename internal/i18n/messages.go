// Package i18n holds the assistant's user-facing copy for both display
// languages of the portfolio. The texts mirror the site's translation table.
package i18n

import (
	"math/rand/v2"

	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/domain"
)

// QuickAction is a pre-canned prompt offered in the widget. Submitting one
// goes through the exact same path as free text.
type QuickAction struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

// Catalog is the full set of assistant messages for one language.
type Catalog struct {
	Greetings    []string
	Maintenance  string
	OfflineError string
	ServiceError string
	EmptyAnswer  string
	SystemPrompt string
	QuickActions []QuickAction
}

var catalogs = map[domain.Language]*Catalog{
	domain.LangES: {
		Greetings: []string{
			"¡Hola! Soy el asistente virtual de Juanma. Estoy aquí para ayudarte a conocer mejor su perfil profesional. ¿Qué te gustaría saber sobre él?",
			"¡Buenas! Como asistente de Juanma, puedo informarte sobre sus proyectos, habilidades o formación. ¿Hablamos?",
			"¡Hola! Tengo acceso a la trayectoria de Juanma para resolver cualquier duda que tengas sobre su trabajo. ¿En qué puedo ayudarte hoy?",
		},
		Maintenance:  "El asistente no está disponible en este entorno. Puedes contactar con Juanma directamente desde la sección de contacto.",
		OfflineError: "Parece que no tienes conexión a internet. Revisa tu red e inténtalo de nuevo.",
		ServiceError: "El asistente no está disponible en este momento. Por favor, inténtalo de nuevo más tarde.",
		EmptyAnswer:  "No he encontrado una respuesta para eso. ¿Quieres preguntarme otra cosa sobre Juanma?",
		SystemPrompt: `Eres el Asistente Virtual de Juan Manuel Fernández Rodríguez. Responde siempre en ESPAÑOL.
REGLA CRÍTICA DE PERSPECTIVA: Debes hablar de Juanma SIEMPRE EN TERCERA PERSONA. Nunca utilices "yo" para referirte a él. Usa expresiones como "Juanma es...", "Él domina...", "El autor de este portfolio...". Tu identidad es la de un asistente externo.
CONTEXTO DINÁMICO: Tienes acceso a la herramienta googleSearch para buscar información actualizada en su LinkedIn (https://www.linkedin.com/in/juanma-fernández-rodríguez) y GitHub (https://github.com/Ju4nmaFd3z).
PERFIL PRINCIPAL: Estudiante de DAM, técnico SMR (nota 9.2), CCNA.
Si no sabes algo, utiliza la búsqueda de Google para encontrar información reciente sobre "Juan Manuel Fernández Rodríguez DAM SMR". Responde de forma concisa, profesional y siempre en tercera persona.`,
		QuickActions: []QuickAction{
			{Label: "Formación", Prompt: "¿Qué estudia Juanma?"},
			{Label: "Proyectos", Prompt: "¿En qué proyectos ha trabajado Juanma?"},
			{Label: "Experiencia", Prompt: "¿Cuál es la experiencia profesional de Juanma?"},
		},
	},
	domain.LangEN: {
		Greetings: []string{
			"Hi! I'm Juanma's virtual assistant. I'm here to help you explore his professional profile. What would you like to know about him?",
			"Hello! As Juanma's assistant, I can provide information about his projects, skills, or education. Shall we talk?",
			"Hi there! I have access to Juanma's career path to answer any questions you might have. How can I assist you today?",
		},
		Maintenance:  "The assistant is not available in this environment. You can reach Juanma directly through the contact section.",
		OfflineError: "It looks like you're offline. Check your connection and try again.",
		ServiceError: "The assistant is unavailable right now. Please try again later.",
		EmptyAnswer:  "I couldn't find an answer for that. Would you like to ask something else about Juanma?",
		SystemPrompt: `You are Juan Manuel Fernández Rodríguez's Virtual Assistant. Always respond in ENGLISH.
CRITICAL PERSPECTIVE RULE: You MUST speak about Juanma ALWAYS IN THE THIRD PERSON. Never use "I" to refer to him. Use expressions like "Juanma is...", "He masters...", "The author of this portfolio...". Your identity is that of an external assistant.
DYNAMIC CONTEXT: You have access to googleSearch to find updated info on his LinkedIn (https://www.linkedin.com/in/juanma-fernández-rodríguez) and GitHub (https://github.com/Ju4nmaFd3z).
CORE PROFILE: Software student, IT tech (9.2 GPA), CCNA certified.
If you don't know something, use Google Search to find recent info about "Juan Manuel Fernández Rodríguez DAM SMR". Be concise, professional, and always speak in the third person.`,
		QuickActions: []QuickAction{
			{Label: "Education", Prompt: "What does Juanma study?"},
			{Label: "Projects", Prompt: "What projects has Juanma worked on?"},
			{Label: "Experience", Prompt: "What is Juanma's professional experience?"},
		},
	},
}

// For returns the catalog for lang, falling back to Spanish (the site default)
// for anything unrecognized.
func For(lang domain.Language) *Catalog {
	if c, ok := catalogs[lang]; ok {
		return c
	}
	return catalogs[domain.LangES]
}

// Greeting picks one of the greeting variants for the language.
func Greeting(lang domain.Language) string {
	greetings := For(lang).Greetings
	return greetings[rand.IntN(len(greetings))]
}
