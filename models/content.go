// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Service is a card in the services section of the home page
type Service struct {
	Icon        string
	Title       string
	Description string
}

// Project is a portfolio entry on the home page
type Project struct {
	Title       string
	Stack       string
	Description string
	Tags        []string
	Link        string
}

// Services returns the fixed list of offered services
func Services() []Service {
	return []Service{
		{Icon: "code", Title: "Aplicações Web", Description: "Back-end sólido com front limpo e acessível."},
		{Icon: "smartphone", Title: "Apps Mobile (Flutter)", Description: "Android/iOS com foco em performance e UX."},
		{Icon: "plug", Title: "Integrações de APIs", Description: "REST, autenticação, ETL, automações e WebSockets."},
		{Icon: "database", Title: "Dados & SQL", Description: "Modelagem, views complexas e pipelines confiáveis."},
	}
}

// Projects returns the fixed portfolio
func Projects() []Project {
	return []Project{
		{
			Title:       "Agiliza (Logística)",
			Stack:       "Go • SQL Server • Flutter Web",
			Description: "Gestão de volumes, CMO, dashboards e integrações LN.",
			Tags:        []string{"Go", "SQL", "WebSockets"},
			Link:        "#",
		},
		{
			Title:       "SAF (Avaliação RH)",
			Stack:       "Go • SQL Server • Agendador",
			Description: "Módulo de avaliação 45/90 dias, lembretes e PDFs.",
			Tags:        []string{"HR", "PDF", "Email"},
			Link:        "#",
		},
		{
			Title:       "Portal de Avisos",
			Stack:       "Go • Bootstrap • YouTube API",
			Description: "TV corporativa com sobreposições dinâmicas e agendamento.",
			Tags:        []string{"Frontend", "Automação"},
			Link:        "#",
		},
	}
}
