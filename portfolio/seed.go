package portfolio

import (
	"fmt"
	"strings"
	"time"
)

// Seed builds the compiled-in portfolio dataset. Contact links come from
// configuration; everything else is fixed content.
func Seed(contact ContactInfo) Snapshot {
	return Snapshot{
		Personal: PersonalInfo{
			Name:         "Sahabaj Alam",
			Title:        "Junior Data Engineer & ML Engineer",
			Intro:        "Hi, I'm Sahabaj Alam",
			Bio:          "Passionate about leveraging data science and machine learning to drive innovation and improve decision-making.",
			Location:     "UK",
			ProfileImage: "assets/profile.svg",
		},
		Contact:        contact,
		Education:      seedEducation(),
		Certifications: seedCertifications(),
		TechStack:      seedTechStack(),
		Projects:       seedProjects(),
		Articles:       seedArticles(),
	}
}

func seedEducation() []Education {
	return []Education{
		{
			Degree:      "MSc Data Science & AI",
			Institution: "Bournemouth University",
			Year:        "2024 - 2025",
			Description: "Advanced studies in data science, machine learning, and artificial intelligence with focus on practical applications and research.",
			Current:     true,
		},
		{
			Degree:      "PG Diploma Data Science & AI",
			Institution: "University of Hyderabad",
			Year:        "2021 - 2022",
			Description: "Comprehensive program covering statistical analysis, machine learning algorithms, and data visualization techniques.",
		},
		{
			Degree:      "B.Tech Electronics & Communication",
			Institution: "Aliah University",
			Year:        "2014 - 2018",
			Description: "Bachelor's degree in Electronics and Communication Engineering with strong foundation in mathematics and technical problem-solving.",
		},
	}
}

func seedCertifications() []Certification {
	return []Certification{
		{
			Title:         "TensorFlow Developer Certificate",
			Issuer:        "TensorFlow",
			Year:          "2024",
			CredentialURL: "https://www.credential.net/tensorflow-developer",
			Description:   "Professional certification demonstrating expertise in TensorFlow framework for machine learning and deep learning applications.",
		},
		{
			Title:         "Deep Learning Specialization",
			Issuer:        "Coursera (Andrew Ng)",
			Year:          "2023",
			CredentialURL: "https://www.coursera.org/specializations/deep-learning",
			Description:   "Comprehensive specialization covering neural networks, deep learning, and practical implementation of AI systems.",
		},
		{
			Title:         "IBM Data Science Professional Certificate",
			Issuer:        "IBM",
			Year:          "2023",
			CredentialURL: "https://www.coursera.org/professional-certificates/ibm-data-science",
			Description:   "Professional certificate program covering data science methodology, tools, and hands-on experience with real-world projects.",
		},
	}
}

func seedTechStack() []TechStack {
	items := []struct {
		name, icon, category string
		proficiency          int
	}{
		{"Python", "fab fa-python", "Programming", 5},
		{"SQL", "fas fa-database", "Database", 4},
		{"Docker", "fab fa-docker", "DevOps", 4},
		{"AWS", "fab fa-aws", "Cloud", 4},
		{"PyTorch", "fas fa-brain", "ML Framework", 4},
		{"TensorFlow", "fas fa-robot", "ML Framework", 4},
		{"Kubernetes", "fas fa-dharmachakra", "DevOps", 3},
		{"PostgreSQL", "fas fa-server", "Database", 4},
		{"MongoDB", "fas fa-leaf", "Database", 3},
		{"FastAPI", "fas fa-rocket", "Framework", 4},
		{"Git", "fab fa-git-alt", "Tools", 5},
		{"MLOps", "fas fa-cogs", "Operations", 3},
		{"LangChain", "fas fa-link", "AI", 4},
		{"Apache Airflow", "fas fa-project-diagram", "Data Pipeline", 4},
		{"Power BI", "fas fa-chart-bar", "BI", 3},
		{"React", "fab fa-react", "Frontend", 4},
		{"Redis", "fas fa-memory", "Database", 3},
		{"Scikit-learn", "fas fa-calculator", "ML Framework", 4},
		{"Grafana", "fas fa-chart-line", "Monitoring", 3},
		{"Pandas", "fas fa-table", "Data Science", 5},
		{"Computer Vision", "fas fa-eye", "AI", 4},
		{"NLP", "fas fa-language", "AI", 4},
	}
	stack := make([]TechStack, 0, len(items))
	for _, it := range items {
		stack = append(stack, TechStack{Name: it.name, Icon: it.icon, Category: it.category, Proficiency: it.proficiency})
	}
	return stack
}

func seedProjects() []Project {
	projects := []Project{
		{
			ID:          "automated-data-science-pipeline",
			Title:       "Automated Data Science Pipeline with LangGraph",
			Description: "End-to-end automated data science pipeline leveraging LangGraph for orchestrating complex ML workflows, from data ingestion to model deployment.",
			TechStack:   []string{"LangGraph", "Python", "Apache Airflow", "MLflow", "Docker", "Kubernetes", "Pandas"},
			ImageURL:    "assets/project_card/automated-data-science-pipeline.png",
			Category:    "ai",
			Featured:    true,
			CreatedDate: time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "healthcare-diagnosis-assistant",
			Title:       "Intelligent Healthcare Diagnosis Assistant",
			Description: "AI-powered diagnostic assistant for healthcare professionals, combining medical imaging analysis, symptom checking, and treatment recommendations.",
			TechStack:   []string{"PyTorch", "Computer Vision", "NLP", "FastAPI", "MongoDB", "Docker", "OpenCV"},
			ImageURL:    "assets/project_card/healthcare-diagnosis-assistant.png",
			Category:    "healthcare",
			CreatedDate: time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "multi-agent-customer-analytics",
			Title:       "Multi-Agent Customer Analytics Platform",
			Description: "Intelligent customer analytics platform using multiple AI agents for customer segmentation, behavior analysis, and personalized recommendations.",
			TechStack:   []string{"AutoGen", "LangChain", "Python", "Redis", "MongoDB", "Streamlit", "Scikit-learn"},
			ImageURL:    "assets/project_card/multi-agent-customer-analytics.png",
			Category:    "analytics",
			Featured:    true,
			CreatedDate: time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "autonomous-ab-testing",
			Title:       "Autonomous A/B Testing Framework",
			Description: "Self-optimizing A/B testing framework that automatically designs, executes, and analyzes experiments using statistical methods and machine learning.",
			TechStack:   []string{"Python", "Scikit-learn", "CausalML", "PostgreSQL", "FastAPI", "Docker", "Grafana"},
			ImageURL:    "assets/project_card/autonomous-ab-testing.png",
			Category:    "mlops",
			CreatedDate: time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "ai-financial-analysis",
			Title:       "AI-Powered Financial Analysis System",
			Description: "Advanced financial analysis system using AI for market prediction, risk assessment, portfolio optimization, and automated trading signals.",
			TechStack:   []string{"TensorFlow", "Pandas", "NumPy", "Python", "FastAPI", "Alpha Vantage API", "Scikit-learn"},
			ImageURL:    "assets/project_card/ai-financial-analysis.png",
			Category:    "finance",
			CreatedDate: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "enterprise-bi-autogen-dashboard",
			Title:       "Enterprise BI + AutoGen Agent Dashboard",
			Description: "Comprehensive business intelligence dashboard powered by AutoGen agents for automated report generation, insights discovery, and interactive data visualization.",
			TechStack:   []string{"AutoGen", "Power BI", "React", "FastAPI", "Python", "PostgreSQL", "DAX"},
			ImageURL:    "assets/project_card/enterprise-bi-autogen-dashboard.png",
			Category:    "bi",
			Featured:    true,
			CreatedDate: time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC),
		},
	}
	for i := range projects {
		p := &projects[i]
		p.LongDescription = fmt.Sprintf("A comprehensive project focused on %s This project demonstrates advanced technical skills and practical application of modern technologies.", strings.ToLower(p.Description))
		p.GitHubURL = "https://github.com/sahabaj/" + p.ID
		p.DemoURL = "https://" + p.ID + "-demo.com"
	}
	return projects
}

func seedArticles() []Article {
	items := []struct {
		id, title, category string
		tags                []string
		featured            bool
		readTime            int
		date                time.Time
	}{
		{"fine-tuning-llms", "Fine-tuning LLMs on Custom Data: Complete Guide", "Tutorial",
			[]string{"LLM", "Fine-tuning", "AI", "Machine Learning"}, true, 8, time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)},
		{"mlops-best-practices", "MLOps Best Practices for Production Systems", "Best Practices",
			[]string{"MLOps", "Production", "DevOps", "Machine Learning"}, true, 10, time.Date(2024, 11, 28, 0, 0, 0, 0, time.UTC)},
		{"pytorch-fundamentals", "PyTorch Fundamentals: Building Neural Networks", "Tutorial",
			[]string{"PyTorch", "Deep Learning", "Neural Networks"}, false, 12, time.Date(2024, 12, 8, 0, 0, 0, 0, time.UTC)},
		{"data-preprocessing", "Data Preprocessing Techniques for ML", "Tutorial",
			[]string{"Data Science", "Preprocessing", "Feature Engineering"}, false, 9, time.Date(2024, 12, 3, 0, 0, 0, 0, time.UTC)},
		{"docker-ml-guide", "Containerizing ML Models with Docker", "Tutorial",
			[]string{"Docker", "MLOps", "Deployment"}, false, 11, time.Date(2024, 11, 25, 0, 0, 0, 0, time.UTC)},
		{"ai-ethics", "AI Ethics in Practice: Real-World Considerations", "Analysis",
			[]string{"AI Ethics", "Responsible AI", "Industry", "Governance"}, false, 6, time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)},
		{"transformer-architecture", "Understanding Transformer Architecture", "Analysis",
			[]string{"Transformers", "NLP", "Architecture"}, false, 14, time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)},
		{"gpt-vs-bert", "GPT vs BERT: A Comprehensive Comparison", "Analysis",
			[]string{"GPT", "BERT", "NLP", "Language Models"}, false, 10, time.Date(2024, 11, 22, 0, 0, 0, 0, time.UTC)},
		{"model-versioning", "Model Versioning and Experiment Tracking", "Best Practices",
			[]string{"MLflow", "Versioning", "Experiments"}, false, 9, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"scalable-ml-systems", "Building Scalable Machine Learning Systems", "Best Practices",
			[]string{"Scalability", "Architecture", "Systems Design"}, false, 13, time.Date(2024, 11, 12, 0, 0, 0, 0, time.UTC)},
		{"attention-mechanisms", "Deep Dive into Attention Mechanisms", "Technical Deep Dive",
			[]string{"Attention", "Deep Learning", "Neural Networks"}, false, 16, time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC)},
		{"distributed-training", "Distributed Training Strategies for Deep Learning", "Technical Deep Dive",
			[]string{"Distributed Computing", "Deep Learning", "Scaling"}, false, 18, time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)},
		{"multimodal-ai-research", "Recent Advances in Multimodal AI Research", "Research",
			[]string{"Multimodal", "Research", "Computer Vision", "NLP"}, false, 12, time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC)},
		{"federated-learning-privacy", "Federated Learning and Privacy Preservation", "Research",
			[]string{"Federated Learning", "Privacy", "Distributed AI"}, false, 13, time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC)},
	}
	articles := make([]Article, 0, len(items))
	for _, it := range items {
		lower := strings.ToLower(it.title)
		articles = append(articles, Article{
			ID:            it.id,
			Title:         it.title,
			Excerpt:       fmt.Sprintf("An insightful article about %s covering key concepts and practical implementations.", lower),
			Content:       fmt.Sprintf("A comprehensive exploration of %s with detailed analysis and practical examples.", lower),
			Category:      it.category,
			Tags:          it.tags,
			PublishedDate: it.date,
			ReadTime:      it.readTime,
			Featured:      it.featured,
			ExternalURL:   "https://medium.com/@sahabaj/" + it.id,
		})
	}
	return articles
}
