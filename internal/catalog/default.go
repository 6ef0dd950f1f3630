package catalog

import (
	"strconv"

	"maturity-assessment-service/internal/domain"
)

// DefaultVersion identifies the built-in questionnaire.
const DefaultVersion = "2023.1"

// Default returns the built-in organizational maturity questionnaire.
func Default() domain.Catalog {
	return domain.Catalog{
		Version: DefaultVersion,
		MaturityLevels: map[int]string{
			0: "Initial: Ad hoc and chaotic processes with little formalization.",
			1: "Managed: Processes are planned and executed according to policy.",
			2: "Defined: Processes are well characterized and understood.",
			3: "Quantitatively Managed: Processes are measured and controlled.",
			4: "Optimizing: Focus on continuous process improvement.",
			5: "Excellence: Best-in-class capabilities with innovative approaches.",
		},
		Categories: []domain.Category{
			{
				ID:          "people",
				Name:        "People",
				Description: "Assesses the organization's human resource capabilities, skills, and culture.",
				Questions: []domain.Question{
					likert("p1", "How well does the organization develop employee skills?",
						"No formal employee development program exists.",
						"Limited, reactive training provided only when necessary.",
						"Basic training program exists but is inconsistently applied.",
						"Structured training program with regular assessments.",
						"Comprehensive development programs with measured effectiveness.",
						"Industry-leading continuous development culture with personalized growth plans.",
					),
					likert("p2", "How effective is knowledge sharing across teams?",
						"No knowledge sharing practices in place; information silos exist.",
						"Ad-hoc knowledge sharing through informal channels.",
						"Some documented knowledge but inconsistent sharing practices.",
						"Formal knowledge sharing procedures and regular collaboration sessions.",
						"Robust knowledge management systems with active participation.",
						"Knowledge sharing deeply embedded in culture with advanced tools and practices.",
					),
					likert("p3", "How would you rate leadership support for innovation?",
						"Leadership discourages or ignores innovation.",
						"Leadership occasionally acknowledges innovation but provides little support.",
						"Leadership verbally supports innovation but allocates few resources.",
						"Leadership actively encourages innovation with dedicated resources.",
						"Leadership champions innovation with substantial investment and recognition.",
						"Leadership creates a transformative innovation culture that drives organizational strategy.",
					),
					binary("p4", "Does the organization have clear career progression paths?",
						"The organization has well-defined career pathways with clear advancement criteria, skill requirements, and development opportunities for employees at all levels.",
						"Career progression is undefined, inconsistent, or left to individual managers without formal structure or transparency.",
					),
					likert("p5", "How engaged are employees in continuous improvement?",
						"Employees show no interest in or awareness of improvement opportunities.",
						"A few employees occasionally suggest improvements.",
						"Some teams participate in improvement initiatives when directed.",
						"Most employees regularly contribute improvement ideas.",
						"Employees actively lead improvement initiatives with measurable results.",
						"Continuous improvement is part of everyone's daily work with innovative approaches.",
					),
				},
			},
			{
				ID:          "process",
				Name:        "Process",
				Description: "Evaluates the maturity of business processes, methodologies, and standardization.",
				Questions: []domain.Question{
					likert("pr1", "How well are processes documented and standardized?",
						"No documentation of processes exists.",
						"Basic process documentation exists but is outdated or incomplete.",
						"Processes documented but with limited standardization across teams.",
						"Well-documented standardized processes followed across the organization.",
						"Comprehensive process documentation with regular reviews and updates.",
						"Highly standardized processes with integrated documentation and automation.",
					),
					likert("pr2", "To what extent are process improvements implemented systematically?",
						"Process improvements are never considered or implemented.",
						"Process improvements made reactively only after major issues.",
						"Some improvements made but without systematic approach.",
						"Regular process improvement cycles with defined methodology.",
						"Systematic improvement with quantifiable objectives and results.",
						"Continuous improvement culture embedded in all processes with predictive capabilities.",
					),
					likert("pr3", "How effective is the feedback loop for process adjustments?",
						"No feedback mechanisms exist for processes.",
						"Feedback collected informally and rarely actioned.",
						"Feedback mechanisms exist but are inconsistently applied.",
						"Structured feedback systems with regular review cycles.",
						"Comprehensive feedback systems with measurable improvements.",
						"Real-time integrated feedback systems that drive continuous refinement.",
					),
					binary("pr4", "Does the organization use metrics to monitor process effectiveness?",
						"The organization has established key performance indicators (KPIs) for processes, regularly collects data, analyzes performance metrics, and uses this information to drive improvements.",
						"The organization does not measure process performance or collects limited metrics without systematic analysis or application to improvement efforts.",
					),
					likert("pr5", "How well are processes aligned with business objectives?",
						"Processes exist in isolation with no connection to business goals.",
						"Some processes loosely tied to business objectives but without clear alignment.",
						"Basic alignment exists but with gaps in key areas.",
						"Most processes are explicitly mapped to business objectives.",
						"Comprehensive alignment with regular reviews to ensure continued relevance.",
						"Perfect alignment where processes directly enable and accelerate business strategy.",
					),
				},
			},
			{
				ID:          "technology",
				Name:        "Technology Adoption",
				Description: "Measures how effectively the organization adopts and utilizes technology.",
				Questions: []domain.Question{
					likert("t1", "How advanced is the technology infrastructure?",
						"Outdated, inadequate infrastructure with significant technical debt.",
						"Basic infrastructure with minimal capabilities and frequent issues.",
						"Standard infrastructure that meets basic needs but with limitations.",
						"Modern infrastructure with good reliability and performance.",
						"Advanced infrastructure with high resilience and scalability.",
						"State-of-the-art infrastructure with cutting-edge capabilities and automation.",
					),
					likert("t2", "To what extent are emerging technologies evaluated and adopted?",
						"No awareness or evaluation of emerging technologies.",
						"Limited awareness but rarely evaluates new technologies.",
						"Some evaluation of new technologies but slow adoption.",
						"Regular evaluation process with methodical adoption approach.",
						"Proactive monitoring and evaluation with successful adoption.",
						"Leading-edge approach with innovative early adoption of beneficial technologies.",
					),
					likert("t3", "How well does the technology integrate across systems?",
						"Completely siloed systems with no integration.",
						"Minimal integration with mostly manual data transfers.",
						"Some integration exists but with significant gaps.",
						"Most major systems integrated with standardized interfaces.",
						"Comprehensive integration with well-designed architecture.",
						"Seamless integration across all systems with real-time data flow.",
					),
					binary("t4", "Does the organization have a technology roadmap?",
						"A comprehensive technology roadmap exists that outlines future technology needs, planned upgrades, transition timelines, and alignment with business strategy.",
						"No formal technology roadmap exists or planning is ad-hoc without a strategic long-term vision for technology evolution.",
					),
					likert("t5", "How effectively are technology investments aligned with business needs?",
						"Technology investments made with no consideration of business needs.",
						"Limited alignment with frequent mismatches between technology and business.",
						"Basic alignment exists but with gaps in key areas.",
						"Good alignment with most technology investments supporting business goals.",
						"Strong alignment with clear business cases for all major investments.",
						"Perfect alignment where technology investments directly enable business strategy and create competitive advantage.",
					),
				},
			},
			{
				ID:          "governance",
				Name:        "Governance",
				Description: "Assesses the organization's governance framework, policies, and compliance practices.",
				Questions: []domain.Question{
					likert("g1", "How clear are the organization's governance policies?",
						"No formal governance policies exist.",
						"Minimal policies exist but are unclear or incomplete.",
						"Basic policies exist but lack detail or comprehensive coverage.",
						"Clear policies exist covering most governance areas.",
						"Comprehensive, well-documented policies with regular reviews.",
						"Exemplary policies that are clear, comprehensive, and adaptive to changing needs.",
					),
					likert("g2", "To what extent is governance integrated into daily operations?",
						"Governance is completely disconnected from operations.",
						"Minimal integration with governance seen as an overhead.",
						"Some integration but often bypassed in practice.",
						"Good integration with governance embedded in key processes.",
						"Strong integration with governance as a natural part of operations.",
						"Complete integration where governance enhances rather than restricts operations.",
					),
					likert("g3", "How effective is risk management?",
						"No formal risk management exists.",
						"Reactive approach to risks after they materialize.",
						"Basic risk identification but limited mitigation planning.",
						"Structured risk management process with regular reviews.",
						"Comprehensive risk management with quantitative assessment.",
						"Proactive, integrated risk management that drives strategic decisions.",
					),
					binary("g4", "Does the organization have a formal compliance program?",
						"A formal compliance program exists with clear policies, regular training, monitoring mechanisms, designated responsibilities, and reporting procedures.",
						"No formal compliance program exists, or compliance activities are ad-hoc and not organized into a coherent program.",
					),
					likert("g5", "How well are governance responsibilities communicated and understood?",
						"Governance responsibilities are not defined or communicated.",
						"Limited communication with poor understanding across the organization.",
						"Basic responsibilities communicated but understanding varies greatly.",
						"Clear communication with good understanding by most stakeholders.",
						"Comprehensive communication program with verification of understanding.",
						"Universal understanding where all employees can articulate their governance responsibilities.",
					),
				},
			},
			{
				ID:          "data",
				Name:        "Data Management",
				Description: "Evaluates how the organization collects, manages, and utilizes data.",
				Questions: []domain.Question{
					likert("d1", "How mature is the organization's data management strategy?",
						"No data management strategy exists.",
						"Basic ad-hoc approach to data management with no formal strategy.",
						"Partial strategy exists but lacks comprehensiveness or implementation.",
						"Formal strategy covers most aspects of data management.",
						"Comprehensive strategy with clear objectives and implementation plans.",
						"Advanced strategy that drives competitive advantage with continuous evolution.",
					),
					likert("d2", "To what extent is data quality monitored and maintained?",
						"No data quality monitoring exists.",
						"Quality issues addressed reactively when problems arise.",
						"Basic quality checks but inconsistent application.",
						"Regular data quality monitoring with established standards.",
						"Comprehensive quality framework with automated monitoring.",
						"Proactive quality management with predictive capabilities and continuous improvement.",
					),
					likert("d3", "How effectively is data used for decision-making?",
						"Decisions made without consideration of data.",
						"Limited use of data, primarily anecdotal or selective.",
						"Some decisions supported by data but inconsistently applied.",
						"Most major decisions informed by relevant data analysis.",
						"Data-driven culture with comprehensive analytics supporting decisions.",
						"Advanced analytics including predictive models driving strategic decisions.",
					),
					binary("d4", "Does the organization have defined data governance policies?",
						"Formal data governance policies exist that define data ownership, quality standards, access controls, privacy requirements, and lifecycle management.",
						"No formal data governance policies exist, or they are inconsistent, incomplete, or not formally adopted.",
					),
					likert("d5", "How well is data security and privacy maintained?",
						"No data security or privacy measures in place.",
						"Basic security measures but significant gaps or inconsistencies.",
						"Standard security measures in place but reactive approach.",
						"Good security framework with regular assessments and updates.",
						"Comprehensive security program with proactive monitoring and incident response.",
						"State-of-the-art security with advanced threat detection, privacy by design, and continuous adaptation.",
					),
				},
			},
		},
	}
}

func likert(id, text string, hints ...string) domain.Question {
	m := make(map[string]string, len(hints))
	for level, hint := range hints {
		m[strconv.Itoa(level)] = hint
	}
	return domain.Question{ID: id, Text: text, Type: domain.QuestionLikert, Weight: 1.0, MaturityHints: m}
}

func binary(id, text, yes, no string) domain.Question {
	return domain.Question{
		ID:            id,
		Text:          text,
		Type:          domain.QuestionBinary,
		Weight:        1.0,
		MaturityHints: map[string]string{"Yes": yes, "No": no},
	}
}
