// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

// NavLink is one entry in the site header navigation. Links with Children
// render as dropdown menus.
//
// Paths are stored pre-localized rather than run through [LocalizedPath] at
// render time: several menu entries point at pages outside the canonical path
// table, and the static tables double as the reference for what each locale's
// URL space looks like.
type NavLink struct {
	Label    string
	Path     string
	Children []NavLink
}

// FooterLinks groups the footer columns.
type FooterLinks struct {
	Techniques    []NavLink
	Resources     []NavLink
	Institutional []NavLink
}

// NavLinks returns the header navigation tree for loc.
func NavLinks(loc Locale) []NavLink {
	if links, ok := navLinks[loc]; ok {
		return links
	}

	return navLinks[DefaultLocale]
}

// FooterLinksFor returns the footer columns for loc.
func FooterLinksFor(loc Locale) FooterLinks {
	if links, ok := footerLinks[loc]; ok {
		return links
	}

	return footerLinks[DefaultLocale]
}

var navLinks = map[Locale][]NavLink{
	PT: {
		{
			Label: "Face Moderna",
			Path:  "/pt/face-moderna",
			Children: []NavLink{
				{Label: "O que é", Path: "/pt/face-moderna/o-que-e"},
				{Label: "Filosofia", Path: "/pt/face-moderna/filosofia"},
				{Label: "Princípios", Path: "/pt/face-moderna/principios"},
				{Label: "Evolução da Cirurgia Facial", Path: "/pt/face-moderna/evolucao-da-cirurgia-facial"},
				{Label: "Socialização do Conhecimento", Path: "/pt/face-moderna/socializacao-do-conhecimento"},
				{Label: "Por que Visão Direta", Path: "/pt/face-moderna/por-que-visao-direta"},
			},
		},
		{
			Label: "Técnicas",
			Path:  "/pt/tecnicas",
			Children: []NavLink{
				{Label: "Endomidface", Path: "/pt/tecnicas/endomidface"},
				{Label: "Deep Neck", Path: "/pt/tecnicas/deep-neck"},
				{Label: "Browlift", Path: "/pt/tecnicas/browlift"},
				{Label: "Anatomia", Path: "/pt/tecnicas/anatomia"},
				{Label: "Planejamento Cirúrgico", Path: "/pt/tecnicas/planejamento-cirurgico"},
			},
		},
		{
			Label: "Educação",
			Path:  "/pt/educacao",
			Children: []NavLink{
				{Label: "Visão Educacional", Path: "/pt/educacao"},
				{Label: "ENDOMIDFACE® por Visão Direta", Path: "/pt/educacao/programas-nucleo/endomidface-visao-direta"},
				{Label: "Deep Neck Mastery", Path: "/pt/educacao/programas-nucleo/deep-neck-mastery"},
				{Label: "Formação Avançada", Path: "/pt/educacao/formacao-avancada"},
				{Label: "Cursos Satélites", Path: "/pt/educacao/cursos-satelites"},
			},
		},
		{
			Label: "Casos",
			Path:  "/pt/casos",
			Children: []NavLink{
				{Label: "Casos Cirúrgicos", Path: "/pt/casos/cirurgicos"},
				{Label: "Casos de Alunos", Path: "/pt/casos/alunos"},
			},
		},
		{
			Label: "Biblioteca",
			Path:  "/pt/biblioteca",
			Children: []NavLink{
				{Label: "E-books", Path: "/pt/biblioteca/ebooks"},
				{Label: "Publicações Científicas", Path: "/pt/biblioteca/publicacoes"},
				{Label: "Estudos Clínicos", Path: "/pt/biblioteca/estudos-clinicos"},
				{Label: "Infográficos", Path: "/pt/biblioteca/infograficos"},
				{Label: "Guias Práticos", Path: "/pt/biblioteca/guias-praticos"},
			},
		},
		{Label: "Blog", Path: "/pt/blog"},
		{
			Label: "Sobre",
			Path:  "/pt/sobre",
			Children: []NavLink{
				{Label: "Dr. Robério Brandão", Path: "/pt/sobre/dr-roberio-brandao"},
				{Label: "Casuística", Path: "/pt/sobre/casuistica"},
				{Label: "Linha do Tempo", Path: "/pt/sobre/linha-do-tempo"},
				{Label: "Princípios Éticos", Path: "/pt/sobre/principios-eticos"},
				{Label: "Visão de Futuro", Path: "/pt/sobre/visao-de-futuro"},
			},
		},
	},
	EN: {
		{
			Label: "Modern Face",
			Path:  "/modern-face",
			Children: []NavLink{
				{Label: "What is it", Path: "/modern-face/what-is-it"},
				{Label: "Philosophy", Path: "/modern-face/philosophy"},
				{Label: "Principles", Path: "/modern-face/principles"},
				{Label: "Evolution of Facial Surgery", Path: "/modern-face/evolution-of-facial-surgery"},
				{Label: "Knowledge Sharing", Path: "/modern-face/knowledge-sharing"},
				{Label: "Why Direct Vision", Path: "/modern-face/why-direct-vision"},
			},
		},
		{
			Label: "Techniques",
			Path:  "/techniques",
			Children: []NavLink{
				{Label: "Endomidface", Path: "/techniques/endomidface"},
				{Label: "Deep Neck", Path: "/techniques/deep-neck"},
				{Label: "Browlift", Path: "/techniques/browlift"},
				{Label: "Anatomy", Path: "/techniques/anatomy"},
				{Label: "Surgical Planning", Path: "/techniques/surgical-planning"},
			},
		},
		{
			Label: "Education",
			Path:  "/education",
			Children: []NavLink{
				{Label: "Educational Vision", Path: "/education"},
				{Label: "ENDOMIDFACE® Direct Vision", Path: "/education/core-programs/endomidface-direct-vision"},
				{Label: "Deep Neck Mastery", Path: "/education/core-programs/deep-neck-mastery"},
				{Label: "Advanced Training", Path: "/education/advanced-training"},
				{Label: "Satellite Courses", Path: "/education/satellite-courses"},
			},
		},
		{
			Label: "Cases",
			Path:  "/cases",
			Children: []NavLink{
				{Label: "Surgical Cases", Path: "/cases/surgical"},
				{Label: "Student Cases", Path: "/cases/students"},
			},
		},
		{
			Label: "Library",
			Path:  "/library",
			Children: []NavLink{
				{Label: "E-books", Path: "/library/ebooks"},
				{Label: "Scientific Publications", Path: "/library/publications"},
				{Label: "Clinical Studies", Path: "/library/clinical-studies"},
				{Label: "Infographics", Path: "/library/infographics"},
				{Label: "Practical Guides", Path: "/library/practical-guides"},
			},
		},
		{Label: "Blog", Path: "/blog"},
		{
			Label: "About",
			Path:  "/about",
			Children: []NavLink{
				{Label: "Dr. Robério Brandão", Path: "/about/dr-roberio-brandao"},
				{Label: "Case Studies", Path: "/about/case-studies"},
				{Label: "Timeline", Path: "/about/timeline"},
				{Label: "Ethical Principles", Path: "/about/ethical-principles"},
				{Label: "Future Vision", Path: "/about/future-vision"},
			},
		},
	},
	ES: {
		{
			Label: "Face Moderna",
			Path:  "/es/face-moderna",
			Children: []NavLink{
				{Label: "Qué es", Path: "/es/face-moderna/que-es"},
				{Label: "Filosofía", Path: "/es/face-moderna/filosofia"},
				{Label: "Principios", Path: "/es/face-moderna/principios"},
				{Label: "Evolución de la Cirugía Facial", Path: "/es/face-moderna/evolucion-de-la-cirugia-facial"},
				{Label: "Socialización del Conocimiento", Path: "/es/face-moderna/socializacion-del-conocimiento"},
				{Label: "Por qué Visión Directa", Path: "/es/face-moderna/por-que-vision-directa"},
			},
		},
		{
			Label: "Técnicas",
			Path:  "/es/tecnicas",
			Children: []NavLink{
				{Label: "Endomidface", Path: "/es/tecnicas/endomidface"},
				{Label: "Deep Neck", Path: "/es/tecnicas/deep-neck"},
				{Label: "Browlift", Path: "/es/tecnicas/browlift"},
				{Label: "Anatomía", Path: "/es/tecnicas/anatomia"},
				{Label: "Planificación Quirúrgica", Path: "/es/tecnicas/planificacion-quirurgica"},
			},
		},
		{
			Label: "Educación",
			Path:  "/es/educacion",
			Children: []NavLink{
				{Label: "Visión Educativa", Path: "/es/educacion"},
				{Label: "ENDOMIDFACE® Visión Directa", Path: "/es/educacion/programas-nucleo/endomidface-vision-directa"},
				{Label: "Deep Neck Mastery", Path: "/es/educacion/programas-nucleo/deep-neck-mastery"},
				{Label: "Formación Avanzada", Path: "/es/educacion/formacion-avanzada"},
				{Label: "Cursos Satélites", Path: "/es/educacion/cursos-satelites"},
			},
		},
		{
			Label: "Casos",
			Path:  "/es/casos",
			Children: []NavLink{
				{Label: "Casos Quirúrgicos", Path: "/es/casos/quirurgicos"},
				{Label: "Casos de Alumnos", Path: "/es/casos/alumnos"},
			},
		},
		{
			Label: "Biblioteca",
			Path:  "/es/biblioteca",
			Children: []NavLink{
				{Label: "E-books", Path: "/es/biblioteca/ebooks"},
				{Label: "Publicaciones Científicas", Path: "/es/biblioteca/publicaciones"},
				{Label: "Estudios Clínicos", Path: "/es/biblioteca/estudios-clinicos"},
				{Label: "Infográficos", Path: "/es/biblioteca/infograficos"},
				{Label: "Guías Prácticas", Path: "/es/biblioteca/guias-practicas"},
			},
		},
		{Label: "Blog", Path: "/es/blog"},
		{
			Label: "Sobre",
			Path:  "/es/sobre",
			Children: []NavLink{
				{Label: "Dr. Robério Brandão", Path: "/es/sobre/dr-roberio-brandao"},
				{Label: "Casuística", Path: "/es/sobre/casuistica"},
				{Label: "Línea del Tiempo", Path: "/es/sobre/linea-del-tiempo"},
				{Label: "Principios Éticos", Path: "/es/sobre/principios-eticos"},
				{Label: "Visión de Futuro", Path: "/es/sobre/vision-de-futuro"},
			},
		},
	},
}

var footerLinks = map[Locale]FooterLinks{
	PT: {
		Techniques: []NavLink{
			{Label: "Endomidface", Path: "/pt/tecnicas/endomidface"},
			{Label: "Deep Neck", Path: "/pt/tecnicas/deep-neck"},
			{Label: "Browlift", Path: "/pt/tecnicas/browlift"},
			{Label: "Anatomia", Path: "/pt/tecnicas/anatomia"},
			{Label: "Planejamento", Path: "/pt/tecnicas/planejamento-cirurgico"},
		},
		Resources: []NavLink{
			{Label: "Blog", Path: "/pt/blog"},
			{Label: "Glossário", Path: "/pt/glossario"},
			{Label: "Casos", Path: "/pt/casos"},
			{Label: "Biblioteca", Path: "/pt/biblioteca"},
			{Label: "FAQ", Path: "/pt/faq"},
		},
		Institutional: []NavLink{
			{Label: "Sobre", Path: "/pt/sobre"},
			{Label: "Educação", Path: "/pt/educacao"},
			{Label: "Contato", Path: "/pt/contato"},
		},
	},
	EN: {
		Techniques: []NavLink{
			{Label: "Endomidface", Path: "/techniques/endomidface"},
			{Label: "Deep Neck", Path: "/techniques/deep-neck"},
			{Label: "Browlift", Path: "/techniques/browlift"},
			{Label: "Anatomy", Path: "/techniques/anatomy"},
			{Label: "Surgical Planning", Path: "/techniques/surgical-planning"},
		},
		Resources: []NavLink{
			{Label: "Blog", Path: "/blog"},
			{Label: "Glossary", Path: "/glossary"},
			{Label: "FAQ", Path: "/faq"},
		},
		Institutional: []NavLink{
			{Label: "About", Path: "/about"},
			{Label: "Education", Path: "/education"},
			{Label: "Contact", Path: "/contact"},
		},
	},
	ES: {
		Techniques: []NavLink{
			{Label: "Endomidface", Path: "/es/tecnicas/endomidface"},
			{Label: "Deep Neck", Path: "/es/tecnicas/deep-neck"},
			{Label: "Browlift", Path: "/es/tecnicas/browlift"},
			{Label: "Anatomía", Path: "/es/tecnicas/anatomia"},
			{Label: "Planificación", Path: "/es/tecnicas/planificacion-quirurgica"},
		},
		Resources: []NavLink{
			{Label: "Blog", Path: "/es/blog"},
			{Label: "Glosario", Path: "/es/glosario"},
			{Label: "FAQ", Path: "/es/faq"},
		},
		Institutional: []NavLink{
			{Label: "Sobre", Path: "/es/sobre"},
			{Label: "Educación", Path: "/es/educacion"},
			{Label: "Contacto", Path: "/es/contacto"},
		},
	},
}
