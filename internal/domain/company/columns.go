package company

// Columns lists every column of the company table in schema order. The first
// entry is the primary key.
var Columns = []string{
	// Primary Key
	"company_id",

	// Company Basics
	"company_name",
	"short_name",
	"logo",
	"category",
	"year_of_incorporation",
	"overview_of_the_company",
	"nature_of_company",
	"company_headquarters",
	"countries_operating_in",
	"number_of_offices_beyond_hq",
	"office_locations",
	"employee_size",

	// People & Talent
	"hiring_velocity",
	"employee_turnover",
	"average_retention_tenure",

	// Business Model
	"pain_points_being_addressed",
	"focus_sectors_industries",
	"services_offerings_products",
	"top_customers_by_client_segments",
	"core_value_proposition",

	// Strategy & Culture
	"vision",
	"mission",
	"values",
	"unique_differentiators",
	"competitive_advantages",
	"weaknesses_gaps_in_offering",
	"key_challenges_and_unmet_needs",

	// Competitive Landscape
	"key_competitors",
	"technology_partners",

	// Company Narrative
	"interesting_facts",
	"recent_news",

	// Digital Presence
	"website_url",
	"quality_of_website",
	"website_rating",
	"website_traffic_rank",
	"social_media_followers_combined",
	"glassdoor_rating",
	"indeed_rating",
	"google_reviews_rating",
	"linkedin_profile_url",
	"twitter_x_handle",
	"facebook_page_url",
	"instagram_page_url",

	// Leadership
	"ceo_name",
	"ceo_linkedin_url",
	"key_business_leaders",
	"warm_introduction_pathways",
	"decision_maker_accessibility",

	// Contact Info
	"company_contact_email",
	"company_phone_number",
	"primary_contact_person_name",
	"primary_contact_person_title",
	"primary_contact_person_email",
	"primary_contact_person_phone_number",

	// Reputation
	"awards_recognitions",
	"brand_sentiment_score",
	"event_participation",

	// Risk & Compliance
	"regulatory_compliance_status",
	"legal_issues_controversies",

	// Financials
	"annual_revenues",
	"annual_profits",
	"revenue_mix",
	"company_valuation",
	"year_over_year_growth_rate",
	"profitability_status",
	"market_share_percent",

	// Funding
	"key_investors_backers",
	"recent_funding_rounds",
	"total_capital_raised",

	// Sustainability
	"esg_practices_or_ratings",

	// Sales & Growth
	"sales_motion",
	"customer_acquisition_cost_cac",
	"customer_lifetime_value_clv",
	"cac_ltv_ratio",
	"churn_rate",
	"net_promoter_score_nps",
	"customer_concentration_risk",
	"burn_rate",
	"runway",
	"burn_multiplier",

	// Innovation
	"intellectual_property",
	"r_and_d_investment",
	"ai_ml_adoption_level",

	// Operations
	"tech_stack_tools_used",
	"cybersecurity_posture",
	"supply_chain_dependencies",
	"geopolitical_risks",
	"macro_risks",

	// People & Talent
	"diversity_metrics",
	"remote_work_policy",
	"training_development_spend",

	// Market
	"partnership_ecosystem",
	"exit_strategy_history",

	// Sustainability
	"carbon_footprint_environmental_impact",
	"ethical_sourcing_practices",

	// Benchmarking
	"benchmark_vs_peers",
	"future_projections",

	// Forecasting
	"strategic_priorities",

	// Network
	"industry_associations_memberships",

	// Proof Points
	"case_studies_public_success_stories",
	"go_to_market_strategy",

	// Innovation
	"innovation_roadmap",
	"product_pipeline",

	// Governance
	"board_of_directors_advisors",

	// Digital Presence
	"company_introduction_marketing_videos",
	"customer_testimonial",
	"industry_benchmark_technology_adoption_rating",

	// Market
	"total_addressable_market_tam",
	"serviceable_addressable_market_sam",
	"serviceable_obtainable_market_som",

	// Culture & People
	"work_culture",
	"manager_quality",
	"psychological_safety",
	"feedback_culture",
	"diversity_inclusion",
	"ethical_standards",

	// Work-Life Balance & Work Patterns
	"typical_working_hours",
	"overtime_expectations",
	"weekend_work",
	"remote_hybrid_onsite_flexibility",
	"leave_policy",
	"burnout_risk",

	// Location, Commute & Accessibility
	"central_vs_peripheral_location",
	"public_transport_access",
	"cab_availability_and_company_cab_policy",
	"commute_time_from_airport",
	"office_zone_type",

	// Safety & Well-being
	"area_safety",
	"company_safety_policies",
	"office_infrastructure_safety",
	"emergency_response_preparedness",
	"health_support",

	// Learning & Growth Opportunities
	"onboarding_and_training_quality",
	"learning_culture",
	"exposure_quality",
	"mentorship_availability",
	"internal_mobility",
	"promotion_clarity",
	"tools_and_technology_access",

	// Role & Work Quality
	"role_clarity",
	"early_ownership",
	"work_impact",
	"execution_vs_thinking_balance",
	"automation_level",
	"cross_functional_exposure",

	// Company Stability & Reputation
	"company_maturity",
	"brand_value",
	"client_quality",
	"layoff_history",

	// Compensation & Benefits
	"fixed_vs_variable_pay",
	"bonus_predictability",
	"esops_and_long_term_incentives",
	"family_health_insurance",
	"relocation_support",
	"lifestyle_and_wellness_benefits",

	// Long-Term Career Signaling
	"exit_opportunities",
	"skill_relevance",
	"external_recognition",
	"network_strength",
	"global_exposure",

	// Values Alignment
	"mission_clarity",
	"sustainability_and_csr",
	"crisis_behavior",
}

var columnSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Columns))
	for _, c := range Columns {
		m[c] = struct{}{}
	}
	return m
}()

// IsColumn reports whether name is a known company column.
func IsColumn(name string) bool {
	_, ok := columnSet[name]
	return ok
}
