package services

// Topic pools used for lesson generation, grouped by difficulty band.
// The generator is asked to pick a random topic from the pool so lessons
// vary across invocations.

// EasyTopics suits bands up to IELTS 4.5.
var EasyTopics = []string{
	"Travel & Tourism",
	"Sports & Recreation",
	"Festivals & Celebrations",
	"Shopping & Consumerism",
	"Transportation",
	"Urban Life & City Living",
	"Food & Cooking",
	"Culture & Arts",
	"Technology & Innovation",
	"Health & Fitness",
	"Business & Economics",
	"Science & Nature",
	"Social Issues",
	"Entertainment",
	"Lifestyle & Fashion",
	"Environment & Climate",
	"Education & Learning",
	"Family & Relationships",
	"Work & Career",
	"Nature & Wildlife",
	"History & Heritage",
	"Music & Performance",
	"Communication",
	"Hobbies & Leisure Activities",
	"Environmental Protection & Sustainability",
	"Social Media & Online Communities",
	"Educational Systems & Learning Methods",
	"Climate Action & Green Initiatives",
	"Weather & Seasons",
}

// MediumTopics suits IELTS band 5.0-6.0 lessons and is the default pool.
var MediumTopics = []string{
	"Economic Development & Market Trends",
	"Digital Transformation & Modern Technology",
	"Healthcare Systems & Medical Advances",
	"Urban Development & City Planning",
	"Cultural Exchange & International Relations",
	"Workplace Dynamics & Career Development",
	"Consumer Behavior & Market Research",
	"Mental Health Awareness & Wellbeing",
	"Innovation & Entrepreneurship",
	"Social Responsibility & Community Service",
	"Journalism in Digital Age",
	"Transportation & Infrastructure Development",
	"Tourism Industry & Travel Trends",
	"Food Security & Agricultural Innovation",
	"Energy Efficiency & Renewable Resources",
	"Youth Engagement & Social Movements",
	"Aging Population & Elderly Care",
	"Gender Equality & Diversity",
	"Crime Prevention & Public Safety",
	"Immigration & Cultural Integration",
	"Research & Development in Science",
}

// ExpertTopics suits band 7.0+ argumentative writing.
var ExpertTopics = []string{
	"Global Economic Policies & Trade Relations",
	"Climate Change Mitigation & Adaptation Strategies",
	"Ethical Dilemmas in Artificial Intelligence",
	"Social Inequality & Wealth Distribution",
	"Mental Health Stigma & Public Policy",
	"Sustainable Development & Resource Management",
	"Political Philosophy & Governance Systems",
	"Biomedical Ethics & Genetic Engineering",
	"Urban Planning & Smart City Infrastructure",
	"Cultural Globalization & Identity Preservation",
	"Cybersecurity Threats & Digital Privacy",
	"Educational Reform & Pedagogical Innovation",
	"Demographic Shifts & Aging Populations",
	"Renewable Energy Transition & Energy Security",
	"Media Influence & Information Warfare",
	"Criminal Justice Reform & Rehabilitation",
	"International Relations & Diplomatic Conflicts",
	"Scientific Research Ethics & Methodology",
	"Corporate Social Responsibility & Ethical Business",
	"Public Health Systems & Healthcare Access",
	"Migration Patterns & Refugee Integration",
	"Technological Disruption & Labor Markets",
	"Environmental Conservation & Biodiversity Loss",
	"Social Media Impact & Digital Wellbeing",
	"Philosophical Questions of Consciousness & Free Will",
}
