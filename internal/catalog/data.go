package catalog

import "github.com/jxt-gindran/jxingwebsite/internal/domain"

// Default returns the built-in agency price list. External catalogs loaded
// via Load replace it; callers fall back here when a catalog file is
// missing or invalid.
func Default() []domain.ServiceCategory {
	return []domain.ServiceCategory{
		{
			ID:          "website-solutions",
			Title:       "Website Solutions",
			Description: "High-performance websites designed to build trust, capture leads, and scale with your business.",
			Tags:        []string{"Corporate", "E-Commerce", "Custom Web App"},
			SubServices: []domain.SubService{
				{
					ID:          "corporate-website",
					Title:       "Corporate Website",
					Tagline:     "Build credibility fast.",
					Description: "A professional 4-6 page website designed to establish your brand authority and capture inquiries.",
					Price:       "988",
					PriceType:   "One-time",
					Benefits:    []string{"Instant Credibility", "Lead Capture Ready", "Mobile Optimized"},
					Deliverables: []string{
						"Custom UI/UX Design (4-6 Pages)",
						"Responsive Mobile Layout",
						"Contact Form & WhatsApp Integration",
						"Basic SEO Setup",
						"1 Year Hosting & SSL Included",
					},
					Terms: "50% deposit, 50% upon launch. Content provided by client.",
				},
				{
					ID:          "basic-ecommerce",
					Title:       "Basic E-Commerce Website",
					Tagline:     "Sell online confidently.",
					Description: "A robust online store setup allowing you to sell products, manage inventory, and process payments securely.",
					Price:       "3,888",
					PriceType:   "Starting at",
					Benefits:    []string{"Secure Payments", "Easy Inventory Management", "Sales Dashboard"},
					Deliverables: []string{
						"Store Setup (Up to 50 Products)",
						"Payment Gateway Integration (FPX/Cards)",
						"Shopping Cart & Checkout System",
						"Order Management System",
						"Admin Training Session",
					},
					Terms: "40/40/20 milestone payment structure.",
				},
				{
					ID:          "ecommerce-plus",
					Title:       "E-Commerce Plus Website",
					Tagline:     "Scale your online empire.",
					Description: "An advanced e-commerce solution with automation, loyalty programs, and advanced analytics for growing brands.",
					Price:       "5,888",
					PriceType:   "Starting at",
					Benefits:    []string{"Customer Retention Tools", "Automated Marketing", "Advanced Analytics"},
					Deliverables: []string{
						"Unlimited Product Listings",
						"Loyalty & Rewards System",
						"Abandoned Cart Recovery",
						"Advanced Sales Analytics",
						"Multi-currency Support",
					},
					Terms: "Custom quote required for high-volume catalogs.",
				},
			},
		},
		{
			ID:          "automation-workflow",
			Title:       "Automation & Workflow",
			Description: "Eliminate manual work and scale efficiency with AI-powered business automation.",
			Tags:        []string{"AI Agents", "CRM Sync", "Process Auto"},
			SubServices: []domain.SubService{
				{
					ID:          "automation-starter",
					Title:       "Workflow Automation Starter",
					Tagline:     "Connect your apps.",
					Description: "Simple linear automations to connect forms to email, CRM, or Sheets.",
					Price:       "888",
					PriceType:   "One-time",
					Benefits:    []string{"Save Time", "No Data Entry", "Instant Alerts"},
					Deliverables: []string{
						"1 Complex Workflow Setup",
						"Integration of 3 Apps (e.g. Web-Sheet-Email)",
						"Error Handling Setup",
						"Handover Documentation",
					},
					Terms: "Software subscription costs excluded (e.g. Zapier).",
				},
				{
					ID:          "business-process",
					Title:       "Business Process Automation",
					Tagline:     "Systemize your operations.",
					Description: "Custom build for complex logic, multi-step approvals, and data synchronization.",
					Price:       "3,888",
					PriceType:   "Starting at",
					Benefits:    []string{"Custom Logic", "Staff Efficiency", "Standardized Process"},
					Deliverables: []string{
						"Process Mapping Consultation",
						"3-5 Connected Workflows",
						"Dashboard Creation",
						"Staff Training Session",
						"30 Days Support",
					},
					Terms: "Quote based on complexity.",
				},
				{
					ID:          "telephony-ai",
					Title:       "Telephony & Communication AI",
					Tagline:     "Never miss a call.",
					Description: "Deploy AI agents to answer calls, qualify leads on WhatsApp, and book appointments.",
					Price:       "4,888",
					PriceType:   "Setup Fee",
					Benefits:    []string{"24/7 Availability", "Instant Response", "Lower Staff Cost"},
					Deliverables: []string{
						"AI Voice Agent Configuration",
						"WhatsApp Bot Setup",
						"Knowledge Base Training",
						"CRM Integration",
						"Call Routing Logic",
					},
					Terms: "Usage fees apply for telephony minutes.",
				},
				{
					ID:          "automation-retainer",
					Title:       "Automation-as-a-Service",
					Tagline:     "Continuous improvement.",
					Description: "Monthly support to build, fix, and optimize workflows as your business evolves.",
					Price:       "1,500",
					PriceType:   "Monthly",
					Benefits:    []string{"On-demand Builds", "Monitoring", "Optimization"},
					Deliverables: []string{
						"Unlimited Workflow Tweaks",
						"New Build Requests (up to 10 hrs)",
						"API Maintenance",
						"System Monitoring",
					},
					Terms: "Min 3 months.",
				},
			},
		},
		{
			ID:          "growth-seo",
			Title:       "Growth-Driven SEO",
			Description: "Dominate search results and drive sustainable organic traffic with data-led SEO strategies.",
			Tags:        []string{"SEO Setup", "Monthly Growth", "Authority Building"},
			SubServices: []domain.SubService{
				{
					ID:          "seo-standard",
					Title:       "SEO Standard Audit & Setup",
					Tagline:     "The foundation of visibility.",
					Description: "Essential technical setup and on-page optimization to get your site indexed and ranking for core terms.",
					Price:       "688",
					PriceType:   "One-time",
					Benefits:    []string{"Google Indexing", "Local Visibility", "Keyword Foundation"},
					Deliverables: []string{
						"Google Search Console Setup",
						"Sitemap Submission",
						"Keyword Mapping (20 Terms)",
						"Meta Title & Description Optimization",
						"Heading Structure Fixes",
					},
					Terms: "One-time project.",
				},
				{
					ID:          "seo-plus",
					Title:       "SEO Plus (Monthly)",
					Tagline:     "Consistent traffic growth.",
					Description: "Ongoing content creation and optimization to steadily climb search rankings and capture more market share.",
					Price:       "1,308",
					PriceType:   "Monthly",
					Benefits:    []string{"Rising Rankings", "Fresh Content", "Link Building"},
					Deliverables: []string{
						"Advanced Keyword Research",
						"3 Optimized Blog Posts/Month",
						"5 High-Quality Backlinks/Month",
						"Technical Error Fixes",
						"Monthly Performance Dashboard",
					},
					Terms: "Minimum 3-month engagement recommended.",
				},
				{
					ID:          "seo-advanced",
					Title:       "SEO Advanced (Retainer)",
					Tagline:     "Dominate your niche.",
					Description: "Aggressive authority building strategy for competitive markets, focusing on topic clusters and high-DR backlinks.",
					Price:       "1,888",
					PriceType:   "Monthly",
					Benefits:    []string{"Market Leadership", "Authority Content", "Aggressive Growth"},
					Deliverables: []string{
						"Comprehensive Topic Clustering",
						"5 Premium Content Pieces/Month",
						"Competitor De-positioning Strategy",
						"10+ High-Authority Backlinks",
						"Quarterly Strategy Review",
					},
					Terms: "6-month commitment for best results.",
				},
			},
		},
		{
			ID:          "performance-ads",
			Title:       "Performance Ads Management",
			Description: "Turn ad spend into revenue with data-driven campaigns on Google, Meta, and TikTok.",
			Tags:        []string{"PPC", "Paid Social", "Retargeting"},
			SubServices: []domain.SubService{
				{
					ID:          "starter-ads",
					Title:       "Starter Ads Management",
					Tagline:     "Launch your first campaign.",
					Description: "Perfect for businesses new to paid ads. We set up and manage your first funnel.",
					Price:       "888",
					PriceType:   "Per Platform/Mo",
					Benefits:    []string{"Fast Launch", "Pixel Setup", "Basic Optimization"},
					Deliverables: []string{
						"Campaign Setup & Structure",
						"Ad Copywriting & Basic Design",
						"Pixel/Tracking Installation",
						"Weekly Optimization",
						"Monthly Report",
					},
					Terms: "Ad spend paid directly to platform. Min 3 months.",
				},
				{
					ID:          "growth-ads",
					Title:       "Growth Ads Management",
					Tagline:     "Optimize for conversions.",
					Description: "Advanced management including retargeting and A/B testing to lower CPA.",
					Price:       "1,288",
					PriceType:   "Per Platform/Mo",
					Benefits:    []string{"Lower CPA", "Retargeting", "Creative Testing"},
					Deliverables: []string{
						"Unlimited Campaign Structures",
						"Retargeting Campaigns",
						"A/B Testing (Creatives/Audiences)",
						"Conversion Rate Optimization advice",
						"Bi-Weekly Reporting",
					},
					Terms: "Ad spend paid directly to platform.",
				},
				{
					ID:          "scale-ads",
					Title:       "Scale Ads (Multi-Platform)",
					Tagline:     "Dominate everywhere.",
					Description: "Omnichannel strategy synchronized across Google, Meta, and others for maximum impact.",
					Price:       "1,888",
					PriceType:   "Per Month",
					Benefits:    []string{"Omnichannel Reach", "Full Funnel", "High Volume"},
					Deliverables: []string{
						"Cross-Platform Strategy (Google + Meta)",
						"Full-Funnel Architecture",
						"Advanced Audience Segmentation",
						"Weekly Strategy Calls",
						"Real-time Dashboard",
					},
					Terms: "For ad budgets exceeding RM10k/month.",
				},
			},
		},
		{
			ID:          "social-media",
			Title:       "Social Media Management",
			Description: "Build a loyal community and maintain an active, professional presence across all major social platforms.",
			Tags:        []string{"Brand Awareness", "Content Creation", "Community Mgmt"},
			SubServices: []domain.SubService{
				{
					ID:          "social-visibility",
					Title:       "Social Visibility Plan",
					Tagline:     "Stay active, stay relevant.",
					Description: "Maintenance package to keep your feed active with professional content.",
					Price:       "588",
					PriceType:   "Per Platform/Mo",
					Benefits:    []string{"Consistent Presence", "Professional Look", "Stress-Free"},
					Deliverables: []string{
						"12 Posts Per Month",
						"Professional Graphic Design",
						"Caption Copywriting",
						"Hashtag Strategy",
						"Scheduling & Posting",
					},
					Terms: "Content calendar approved 1 week prior to month start.",
				},
				{
					ID:          "social-growth",
					Title:       "Social Growth Plan",
					Tagline:     "Grow your following.",
					Description: "Enhanced strategy focused on increasing reach, engagement, and follower count.",
					Price:       "1,088",
					PriceType:   "Per Platform/Mo",
					Benefits:    []string{"Audience Growth", "High Engagement", "Viral Potential"},
					Deliverables: []string{
						"20 Posts Per Month (Inc. 4 Reels/TikToks)",
						"Community Engagement (Reply to comments)",
						"Stories Strategy",
						"Monthly Growth Report",
						"Trend Jacking",
					},
					Terms: "30-day cancellation notice.",
				},
			},
		},
		{
			ID:          "professional-services",
			Title:       "Professional Services",
			Description: "Expert consultation, audits, and maintenance to keep your digital operations running at peak performance.",
			Tags:        []string{"Consulting", "Audits", "Maintenance"},
			SubServices: []domain.SubService{
				{
					ID:          "strategy-consultation",
					Title:       "Digital Strategy Consultation",
					Tagline:     "Clarity before execution.",
					Description: "A dedicated 1-on-1 session to map out your digital roadmap, identify growth gaps, and optimize ROI.",
					Price:       "888",
					PriceType:   "Per Session",
					Benefits:    []string{"Clear Roadmap", "Risk Reduction", "Expert Insight"},
					Deliverables: []string{
						"60-Minute Deep Dive Call",
						"Current State Audit",
						"Strategic Growth Roadmap PDF",
						"Technology Stack Recommendation",
					},
					Terms: "Full payment required prior to booking.",
				},
				{
					ID:          "seo-audit",
					Title:       "SEO Deep Dive Audit",
					Tagline:     "Uncover hidden barriers.",
					Description: "A comprehensive technical and content audit to understand why you aren't ranking and how to fix it.",
					Price:       "488",
					PriceType:   "Per Audit",
					Benefits:    []string{"Actionable Fixes", "Competitor Insight", "Traffic Unlocking"},
					Deliverables: []string{
						"Technical SEO Health Check",
						"Backlink Profile Analysis",
						"Keyword Gap Analysis",
						"15-Page Findings Report",
						"Priority Action List",
					},
					Terms: "One-time fee. Confidential report.",
				},
				{
					ID:          "maintenance-support",
					Title:       "Website Maintenance & Support",
					Tagline:     "Peace of mind guaranteed.",
					Description: "Ongoing care for your website ensuring it stays online, secure, and up-to-date without you lifting a finger.",
					Price:       "688",
					PriceType:   "Monthly",
					Benefits:    []string{"Uptime Monitoring", "Security Patching", "Priority Support"},
					Deliverables: []string{
						"Weekly Plugin/Core Updates",
						"Daily Cloud Backups",
						"24/7 Uptime Monitoring",
						"Security Scanning",
						"Monthly Health Report",
					},
					Terms: "No lock-in contract. 30-day cancellation notice.",
				},
			},
		},
	}
}

// FindCategory returns the category with the given id, or false.
func FindCategory(categories []domain.ServiceCategory, id string) (*domain.ServiceCategory, bool) {
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], true
		}
	}
	return nil, false
}
