/* topics.go
 * Per track topic lists with difficulty scores. Keys must stay in sync with
 * trackCategories in catalog.go
 * Authors: Zachary Bower
 */

package catalog

var trackTopics = map[string][]Topic{
	".net": {
		{Name: "C# Basics", Difficulty: "beginner", Score: 15},
		{Name: ".NET Core Fundamentals", Difficulty: "beginner", Score: 15},
		{Name: "Basic Web API", Difficulty: "intermediate", Score: 25},
		{Name: ".NET MVC", Difficulty: "intermediate", Score: 25},
		{Name: "Entity Framework", Difficulty: "advanced", Score: 40},
		{Name: "Dependency Injection", Difficulty: "advanced", Score: 40},
		{Name: "Microservices with .NET", Difficulty: "advanced", Score: 40},
		{Name: "Advanced ORM", Difficulty: "advanced", Score: 40},
		{Name: "Performance Optimization", Difficulty: "advanced", Score: 40},
	},
	"node.js": {
		{Name: "JavaScript Basics", Difficulty: "beginner", Score: 15},
		{Name: "Node.js Fundamentals", Difficulty: "beginner", Score: 15},
		{Name: "Express.js Basics", Difficulty: "intermediate", Score: 25},
		{Name: "Async Programming", Difficulty: "intermediate", Score: 25},
		{Name: "RESTful API Design", Difficulty: "advanced", Score: 40},
		{Name: "Authentication", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Express", Difficulty: "advanced", Score: 40},
		{Name: "Microservices", Difficulty: "advanced", Score: 40},
		{Name: "Performance Tuning", Difficulty: "advanced", Score: 40},
	},
	"laravel": {
		{Name: "PHP Basics", Difficulty: "beginner", Score: 15},
		{Name: "Laravel Installation", Difficulty: "beginner", Score: 15},
		{Name: "Routing Fundamentals", Difficulty: "intermediate", Score: 25},
		{Name: "Eloquent ORM", Difficulty: "intermediate", Score: 25},
		{Name: "Authentication", Difficulty: "advanced", Score: 40},
		{Name: "Blade Templates", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Eloquent", Difficulty: "advanced", Score: 40},
		{Name: "Laravel Microservices", Difficulty: "advanced", Score: 40},
		{Name: "Performance Optimization", Difficulty: "advanced", Score: 40},
	},
	"django": {
		{Name: "Python Basics", Difficulty: "beginner", Score: 15},
		{Name: "Django Setup", Difficulty: "beginner", Score: 15},
		{Name: "Basic Models", Difficulty: "intermediate", Score: 25},
		{Name: "Django ORM", Difficulty: "intermediate", Score: 25},
		{Name: "Authentication", Difficulty: "advanced", Score: 40},
		{Name: "REST Framework", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Querying", Difficulty: "advanced", Score: 40},
		{Name: "Microservices", Difficulty: "advanced", Score: 40},
		{Name: "Performance Optimization", Difficulty: "advanced", Score: 40},
	},
	"spring": {
		{Name: "Java Basics", Difficulty: "beginner", Score: 15},
		{Name: "Spring Boot Fundamentals", Difficulty: "beginner", Score: 15},
		{Name: "Dependency Injection", Difficulty: "intermediate", Score: 25},
		{Name: "Spring MVC", Difficulty: "intermediate", Score: 25},
		{Name: "JPA", Difficulty: "advanced", Score: 40},
		{Name: "Security Configuration", Difficulty: "advanced", Score: 40},
		{Name: "Microservices", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Caching", Difficulty: "advanced", Score: 40},
		{Name: "Performance Tuning", Difficulty: "advanced", Score: 40},
	},
	"network security": {
		{Name: "Network Basics", Difficulty: "beginner", Score: 15},
		{Name: "TCP/IP", Difficulty: "beginner", Score: 15},
		{Name: "Firewall Concepts", Difficulty: "intermediate", Score: 25},
		{Name: "Intrusion Detection", Difficulty: "intermediate", Score: 25},
		{Name: "Network Protocols", Difficulty: "advanced", Score: 40},
		{Name: "Packet Analysis", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Threat Detection", Difficulty: "advanced", Score: 40},
		{Name: "Network Forensics", Difficulty: "advanced", Score: 40},
		{Name: "Secure Network Design", Difficulty: "advanced", Score: 40},
	},
	"ethical hacking": {
		{Name: "Security Fundamentals", Difficulty: "beginner", Score: 15},
		{Name: "Basic Networking", Difficulty: "beginner", Score: 15},
		{Name: "Linux Basics", Difficulty: "intermediate", Score: 25},
		{Name: "Penetration Testing Basics", Difficulty: "intermediate", Score: 25},
		{Name: "Vulnerability Assessment", Difficulty: "advanced", Score: 40},
		{Name: "Exploit Techniques", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Penetration Testing", Difficulty: "advanced", Score: 40},
		{Name: "Red Team Tactics", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Exploit Development", Difficulty: "advanced", Score: 40},
	},
	"digital forensics": {
		{Name: "Computer Forensics Basics", Difficulty: "beginner", Score: 15},
		{Name: "Evidence Preservation", Difficulty: "beginner", Score: 15},
		{Name: "Basic Tools", Difficulty: "intermediate", Score: 25},
		{Name: "Forensic Analysis Techniques", Difficulty: "intermediate", Score: 25},
		{Name: "Disk Forensics", Difficulty: "advanced", Score: 40},
		{Name: "Memory Forensics", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Forensic Tools", Difficulty: "advanced", Score: 40},
		{Name: "Malware Analysis", Difficulty: "advanced", Score: 40},
		{Name: "Complex Investigation Techniques", Difficulty: "advanced", Score: 40},
	},
	"machine learning": {
		{Name: "Python Basics", Difficulty: "beginner", Score: 15},
		{Name: "Statistics Fundamentals", Difficulty: "beginner", Score: 15},
		{Name: "Basic ML Algorithms", Difficulty: "intermediate", Score: 25},
		{Name: "Scikit-learn", Difficulty: "intermediate", Score: 25},
		{Name: "Supervised Learning", Difficulty: "advanced", Score: 40},
		{Name: "Feature Engineering", Difficulty: "advanced", Score: 40},
		{Name: "Deep Learning", Difficulty: "advanced", Score: 40},
		{Name: "Advanced ML Algorithms", Difficulty: "advanced", Score: 40},
		{Name: "Model Deployment", Difficulty: "advanced", Score: 40},
	},
	"data analysis": {
		{Name: "Python Basics", Difficulty: "beginner", Score: 15},
		{Name: "Excel Fundamentals", Difficulty: "beginner", Score: 15},
		{Name: "Basic Statistics", Difficulty: "intermediate", Score: 25},
		{Name: "Pandas", Difficulty: "intermediate", Score: 25},
		{Name: "NumPy", Difficulty: "advanced", Score: 40},
		{Name: "Data Visualization", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Analytics", Difficulty: "advanced", Score: 40},
		{Name: "Predictive Modeling", Difficulty: "advanced", Score: 40},
		{Name: "Big Data Tools", Difficulty: "advanced", Score: 40},
	},
	"data engineering": {
		{Name: "SQL Basics", Difficulty: "beginner", Score: 15},
		{Name: "Data Warehousing Concepts", Difficulty: "beginner", Score: 15},
		{Name: "ETL Fundamentals", Difficulty: "intermediate", Score: 25},
		{Name: "Apache Spark", Difficulty: "intermediate", Score: 25},
		{Name: "Big Data Technologies", Difficulty: "advanced", Score: 40},
		{Name: "Data Pipeline Design", Difficulty: "advanced", Score: 40},
		{Name: "Distributed Computing", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Data Modeling", Difficulty: "advanced", Score: 40},
		{Name: "Real-time Data Processing", Difficulty: "advanced", Score: 40},
	},
	"deep learning": {
		{Name: "Neural Network Basics", Difficulty: "beginner", Score: 15},
		{Name: "Python for AI", Difficulty: "beginner", Score: 15},
		{Name: "Basic Deep Learning Concepts", Difficulty: "intermediate", Score: 25},
		{Name: "TensorFlow", Difficulty: "intermediate", Score: 25},
		{Name: "Keras", Difficulty: "advanced", Score: 40},
		{Name: "Neural Network Architectures", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Neural Networks", Difficulty: "advanced", Score: 40},
		{Name: "Computer Vision", Difficulty: "advanced", Score: 40},
		{Name: "NLP Techniques", Difficulty: "advanced", Score: 40},
	},
	"front end": {
		{Name: "HTML Basics", Difficulty: "beginner", Score: 15},
		{Name: "CSS Fundamentals", Difficulty: "beginner", Score: 15},
		{Name: "JavaScript Basics", Difficulty: "intermediate", Score: 25},
		{Name: "Responsive Design", Difficulty: "intermediate", Score: 25},
		{Name: "Bootstrap", Difficulty: "advanced", Score: 40},
		{Name: "JavaScript ES6+", Difficulty: "advanced", Score: 40},
		{Name: "React", Difficulty: "advanced", Score: 40},
		{Name: "Vue.js", Difficulty: "advanced", Score: 40},
		{Name: "State Management", Difficulty: "advanced", Score: 40},
	},
	"ui-ux": {
		{Name: "Design Principles", Difficulty: "beginner", Score: 15},
		{Name: "Color Theory", Difficulty: "beginner", Score: 15},
		{Name: "Typography Basics", Difficulty: "intermediate", Score: 25},
		{Name: "Wireframing", Difficulty: "intermediate", Score: 25},
		{Name: "Prototyping", Difficulty: "advanced", Score: 40},
		{Name: "User Research", Difficulty: "advanced", Score: 40},
		{Name: "Figma", Difficulty: "advanced", Score: 40},
		{Name: "Adobe XD", Difficulty: "advanced", Score: 40},
		{Name: "Advanced UX Strategy", Difficulty: "advanced", Score: 40},
	},
	"flutter": {
		{Name: "Dart Basics", Difficulty: "beginner", Score: 15},
		{Name: "Flutter Installation", Difficulty: "beginner", Score: 15},
		{Name: "Basic Widgets", Difficulty: "intermediate", Score: 25},
		{Name: "State Management", Difficulty: "intermediate", Score: 25},
		{Name: "Navigation", Difficulty: "advanced", Score: 40},
		{Name: "API Integration", Difficulty: "advanced", Score: 40},
		{Name: "Custom Widgets", Difficulty: "advanced", Score: 40},
		{Name: "Performance Optimization", Difficulty: "advanced", Score: 40},
		{Name: "Advanced State Solutions", Difficulty: "advanced", Score: 40},
	},
	"cloud": {
		{Name: "Cloud Computing Basics", Difficulty: "beginner", Score: 15},
		{Name: "Basic Networking", Difficulty: "beginner", Score: 15},
		{Name: "Virtual Machines", Difficulty: "intermediate", Score: 25},
		{Name: "AWS Basics", Difficulty: "intermediate", Score: 25},
		{Name: "Azure Fundamentals", Difficulty: "advanced", Score: 40},
		{Name: "Docker Basics", Difficulty: "advanced", Score: 40},
		{Name: "Kubernetes", Difficulty: "advanced", Score: 40},
		{Name: "Cloud Security", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Deployment Strategies", Difficulty: "advanced", Score: 40},
	},
	"mobile": {
		{Name: "Mobile Development Basics", Difficulty: "beginner", Score: 15},
		{Name: "UI Design for Mobile", Difficulty: "beginner", Score: 15},
		{Name: "Android Development", Difficulty: "intermediate", Score: 25},
		{Name: "iOS Development", Difficulty: "intermediate", Score: 25},
		{Name: "React Native Basics", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Mobile Architectures", Difficulty: "advanced", Score: 40},
		{Name: "Performance Optimization", Difficulty: "advanced", Score: 40},
		{Name: "Cross-Platform Development", Difficulty: "advanced", Score: 40},
	},
	"embedded systems": {
		{Name: "Electronics Basics", Difficulty: "beginner", Score: 15},
		{Name: "Microcontroller Fundamentals", Difficulty: "beginner", Score: 15},
		{Name: "C Programming", Difficulty: "intermediate", Score: 25},
		{Name: "Arduino Programming", Difficulty: "intermediate", Score: 25},
		{Name: "Raspberry Pi", Difficulty: "advanced", Score: 40},
		{Name: "Sensor Integration", Difficulty: "advanced", Score: 40},
		{Name: "IoT Protocols", Difficulty: "advanced", Score: 40},
		{Name: "Advanced Embedded Programming", Difficulty: "advanced", Score: 40},
		{Name: "Real-Time Systems", Difficulty: "advanced", Score: 40},
	},
	"vr": {
		{Name: "3D Basics", Difficulty: "beginner", Score: 15},
		{Name: "Virtual Reality Concepts", Difficulty: "beginner", Score: 15},
		{Name: "Basic Game Design", Difficulty: "intermediate", Score: 25},
		{Name: "Unity Basics", Difficulty: "intermediate", Score: 25},
		{Name: "3D Modeling", Difficulty: "advanced", Score: 40},
		{Name: "Basic VR Interactions", Difficulty: "advanced", Score: 40},
		{Name: "Advanced VR Development", Difficulty: "advanced", Score: 40},
		{Name: "Unreal Engine", Difficulty: "advanced", Score: 40},
		{Name: "VR Performance Optimization", Difficulty: "advanced", Score: 40},
	},
	"game development": {
		{Name: "Game Design Basics", Difficulty: "beginner", Score: 15},
		{Name: "Unity Basics", Difficulty: "beginner", Score: 15},
		{Name: "Unreal Engine Basics", Difficulty: "intermediate", Score: 25},
		{Name: "2D Game Development", Difficulty: "intermediate", Score: 25},
		{Name: "3D Game Development", Difficulty: "advanced", Score: 40},
		{Name: "Game Physics", Difficulty: "advanced", Score: 40},
		{Name: "AI in Games", Difficulty: "advanced", Score: 40},
		{Name: "Multiplayer Game Development", Difficulty: "advanced", Score: 40},
		{Name: "VR Game Development", Difficulty: "advanced", Score: 40},
	},
}
