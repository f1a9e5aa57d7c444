// Package catalog provides the built-in internship catalog used when no
// external candidate generator is available or when generation fails.
package catalog

import (
	"strings"

	"github.com/jonathan/internmatch/internal/types"
)

// Candidates returns the built-in candidate pool best matching the profile's
// area of interest. The general pool is returned for a nil profile or an
// unrecognized interest.
func Candidates(profile *types.UserProfile) []types.Posting {
	if profile == nil {
		return clone(generalPostings)
	}

	interest := strings.ToLower(profile.AreaOfInterest)
	switch {
	case strings.Contains(interest, "information technology") || strings.Contains(interest, "software"):
		return clone(softwarePostings)
	case strings.Contains(interest, "artificial intelligence") || strings.Contains(interest, "machine learning"):
		return clone(aiPostings)
	default:
		return clone(generalPostings)
	}
}

// clone copies the pool so callers never mutate the package-level catalog.
func clone(pool []types.Posting) []types.Posting {
	out := make([]types.Posting, len(pool))
	copy(out, pool)
	return out
}

var softwarePostings = []types.Posting{
	{
		Company:        "TCS (Tata Consultancy Services)",
		Title:          "Software Development Intern",
		Category:       types.CategoryPrivate,
		Sector:         "IT Services",
		RequiredSkills: []string{"Java", "Python", "Problem Solving", "Communication"},
		Duration:       "3 Months",
		Location:       "Multiple Cities",
		Stipend:        "₹30,000/month",
		Description:    "Work on enterprise software projects and gain real-world coding experience.",
	},
	{
		Company:        "ISRO",
		Title:          "Technology Intern",
		Category:       types.CategoryGovernment,
		Sector:         "Space Technology",
		RequiredSkills: []string{"Programming", "Research", "Data Analysis", "Innovation"},
		Duration:       "6 Months",
		Location:       "Bangalore",
		Stipend:        "₹25,000/month",
		Description:    "Contribute to India's space missions with a technical, research-driven team.",
	},
	{
		Company:        "Infosys",
		Title:          "Digital Innovation Intern",
		Category:       types.CategoryPrivate,
		Sector:         "IT Consulting",
		RequiredSkills: []string{"Digital Literacy", "Innovation", "Teamwork", "Problem Solving"},
		Duration:       "3 Months",
		Location:       "Pune/Bangalore",
		Stipend:        "₹28,000/month",
		Description:    "Work on digital transformation projects across enterprise clients.",
	},
	{
		Company:        "DRDO",
		Title:          "Research Intern",
		Category:       types.CategoryGovernment,
		Sector:         "Defence Research",
		RequiredSkills: []string{"Research", "Technical Analysis", "Problem Solving", "Documentation"},
		Duration:       "4 Months",
		Location:       "Delhi/Hyderabad",
		Stipend:        "₹20,000/month",
		Description:    "Join national defence research projects and build deep technical expertise.",
	},
	{
		Company:        "Wipro",
		Title:          "Cloud Technology Intern",
		Category:       types.CategoryPrivate,
		Sector:         "Cloud Services",
		RequiredSkills: []string{"Cloud Computing", "AWS", "Problem Solving", "Learning Agility"},
		Duration:       "4 Months",
		Location:       "Pune",
		Stipend:        "₹32,000/month",
		Description:    "Hands-on cloud experience with enterprise clients on high-demand platforms.",
	},
	{
		Company:        "HCL Technologies",
		Title:          "Technology Trainee",
		Category:       types.CategoryPrivate,
		Sector:         "IT Services",
		RequiredSkills: []string{"Programming", "Database", "Web Technologies", "Communication"},
		Duration:       "3 Months",
		Location:       "Noida/Chennai",
		Stipend:        "₹26,000/month",
		Description:    "Comprehensive technology training program with mentorship support.",
	},
}

var aiPostings = []types.Posting{
	{
		Company:        "Google India",
		Title:          "AI/ML Research Intern",
		Category:       types.CategoryPrivate,
		Sector:         "Artificial Intelligence",
		RequiredSkills: []string{"Python", "Machine Learning", "TensorFlow", "Data Science"},
		Duration:       "4 Months",
		Location:       "Bangalore",
		Stipend:        "₹45,000/month",
		Description:    "Work on applied AI research alongside an experienced engineering team.",
	},
	{
		Company:        "Microsoft India",
		Title:          "Data Science Intern",
		Category:       types.CategoryPrivate,
		Sector:         "Data Science",
		RequiredSkills: []string{"Python", "R", "Statistical Analysis", "Azure ML"},
		Duration:       "3 Months",
		Location:       "Hyderabad",
		Stipend:        "₹40,000/month",
		Description:    "Analyze large datasets and build machine learning models on Azure.",
	},
	{
		Company:        "ISRO",
		Title:          "Data Analytics Intern",
		Category:       types.CategoryGovernment,
		Sector:         "Space Data Science",
		RequiredSkills: []string{"Data Analysis", "Python", "Satellite Data", "Research"},
		Duration:       "5 Months",
		Location:       "Bangalore",
		Stipend:        "₹25,000/month",
		Description:    "Apply machine learning to satellite imagery and space research data.",
	},
	{
		Company:        "TCS Research",
		Title:          "AI Innovation Intern",
		Category:       types.CategoryPrivate,
		Sector:         "AI Research",
		RequiredSkills: []string{"Machine Learning", "Deep Learning", "Python", "Research"},
		Duration:       "4 Months",
		Location:       "Pune",
		Stipend:        "₹35,000/month",
		Description:    "Contribute to next-generation AI solutions for global clients.",
	},
	{
		Company:        "IIT Research Labs",
		Title:          "AI Research Assistant",
		Category:       types.CategoryGovernment,
		Sector:         "Academic Research",
		RequiredSkills: []string{"Research", "Python", "ML Algorithms", "Technical Writing"},
		Duration:       "6 Months",
		Location:       "Multiple IITs",
		Stipend:        "₹20,000/month",
		Description:    "Collaborate with researchers on AI projects and build academic credentials.",
	},
	{
		Company:        "Wipro AI Labs",
		Title:          "ML Engineering Intern",
		Category:       types.CategoryPrivate,
		Sector:         "AI Engineering",
		RequiredSkills: []string{"MLOps", "Python", "Cloud Platforms", "Model Deployment"},
		Duration:       "3 Months",
		Location:       "Bangalore",
		Stipend:        "₹32,000/month",
		Description:    "Deploy machine learning models at scale for enterprise applications.",
	},
}

var generalPostings = []types.Posting{
	{
		Company:        "Reliance Industries",
		Title:          "Management Trainee",
		Category:       types.CategoryPrivate,
		Sector:         "Business Management",
		RequiredSkills: []string{"Leadership", "Communication", "Business Analysis", "Project Management"},
		Duration:       "6 Months",
		Location:       "Mumbai",
		Stipend:        "₹35,000/month",
		Description:    "Develop leadership skills with comprehensive exposure to business operations.",
	},
	{
		Company:        "HDFC Bank",
		Title:          "Banking Operations Intern",
		Category:       types.CategoryPrivate,
		Sector:         "Financial Services",
		RequiredSkills: []string{"Financial Analysis", "Customer Service", "Banking Operations", "Communication"},
		Duration:       "3 Months",
		Location:       "Multiple Cities",
		Stipend:        "₹25,000/month",
		Description:    "Learn banking operations and financial services at a leading private bank.",
	},
	{
		Company:        "NITI Aayog",
		Title:          "Policy Research Intern",
		Category:       types.CategoryGovernment,
		Sector:         "Public Policy",
		RequiredSkills: []string{"Research", "Policy Analysis", "Report Writing", "Data Interpretation"},
		Duration:       "4 Months",
		Location:       "New Delhi",
		Stipend:        "₹18,000/month",
		Description:    "Research socio-economic issues and contribute to national policy making.",
	},
	{
		Company:        "Mahindra Group",
		Title:          "Business Development Intern",
		Category:       types.CategoryPrivate,
		Sector:         "Automotive & Business",
		RequiredSkills: []string{"Business Development", "Market Research", "Communication", "Strategic Thinking"},
		Duration:       "4 Months",
		Location:       "Pune/Mumbai",
		Stipend:        "₹28,000/month",
		Description:    "Develop business strategy and market analysis skills with an automotive leader.",
	},
	{
		Company:        "Indian Railways",
		Title:          "Operations Intern",
		Category:       types.CategoryGovernment,
		Sector:         "Transportation",
		RequiredSkills: []string{"Operations Management", "Logistics", "Problem Solving", "Team Coordination"},
		Duration:       "5 Months",
		Location:       "Multiple Cities",
		Stipend:        "₹15,000/month",
		Description:    "Exposure to logistics and operations of the world's largest railway network.",
	},
	{
		Company:        "Larsen & Toubro",
		Title:          "Engineering Trainee",
		Category:       types.CategoryPrivate,
		Sector:         "Engineering & Construction",
		RequiredSkills: []string{"Engineering Principles", "Project Management", "CAD", "Technical Communication"},
		Duration:       "6 Months",
		Location:       "Chennai/Mumbai",
		Stipend:        "₹24,000/month",
		Description:    "Build practical engineering skills on large-scale infrastructure projects.",
	},
}
