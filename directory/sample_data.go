package directory

func sampleDoctors() []Doctor {
	return []Doctor{
		{
			ID:            "doc-1",
			Name:          "Dr. Sarah Chen",
			Specialty:     "Cardiologist",
			Hospital:      "City Heart Center",
			Rating:        4.9,
			Reviews:       128,
			Experience:    "12 years",
			NextAvailable: "Tomorrow, 2 PM",
			Price:         "$150",
			About:         "Specializes in preventive cardiology and heart disease management. Board certified with extensive experience in cardiac interventions.",
			Education:     "MD, Harvard Medical School",
			Languages:     []string{"English", "Mandarin"},
			Availability:  []string{"Mon, Wed, Fri: 9 AM - 5 PM", "Tue, Thu: 10 AM - 6 PM"},
			Contact:       Contact{Phone: "+1 (555) 123-4567", Email: "dr.chen@cityheart.com"},
		},
		{
			ID:            "doc-2",
			Name:          "Dr. Marcus Johnson",
			Specialty:     "Dermatologist",
			Hospital:      "Skin Health Institute",
			Rating:        4.8,
			Reviews:       94,
			Experience:    "8 years",
			NextAvailable: "Today, 4 PM",
			Price:         "$120",
			About:         "Expert in cosmetic dermatology, skin cancer screenings, and acne treatment. Focuses on personalized skincare regimens.",
			Education:     "MD, Johns Hopkins University",
			Languages:     []string{"English", "Spanish"},
			Availability:  []string{"Mon-Fri: 8 AM - 6 PM", "Sat: 9 AM - 1 PM"},
			Contact:       Contact{Phone: "+1 (555) 987-6543", Email: "dr.johnson@skinhealth.com"},
		},
		{
			ID:            "doc-3",
			Name:          "Dr. Priya Patel",
			Specialty:     "Neurologist",
			Hospital:      "Neuro Care Center",
			Rating:        4.9,
			Reviews:       156,
			Experience:    "15 years",
			NextAvailable: "Wednesday, 11 AM",
			Price:         "$180",
			About:         "Specializes in migraine management, epilepsy, and neurodegenerative disorders. Published researcher in neurology journals.",
			Education:     "MD, Stanford University",
			Languages:     []string{"English", "Hindi", "Gujarati"},
			Availability:  []string{"Tue, Thu: 9 AM - 7 PM", "Wed, Fri: 10 AM - 6 PM"},
			Contact:       Contact{Phone: "+1 (555) 456-7890", Email: "dr.patel@neurocare.com"},
		},
		{
			ID:            "doc-4",
			Name:          "Dr. James Wilson",
			Specialty:     "Orthopedic Surgeon",
			Hospital:      "Bone & Joint Clinic",
			Rating:        4.7,
			Reviews:       203,
			Experience:    "18 years",
			NextAvailable: "Friday, 3 PM",
			Price:         "$200",
			About:         "Expert in joint replacements, sports injuries, and spinal surgery. Uses minimally invasive techniques for faster recovery.",
			Education:     "MD, Mayo Clinic",
			Languages:     []string{"English", "French"},
			Availability:  []string{"Mon, Wed, Fri: 7 AM - 3 PM", "Tue, Thu: 1 PM - 9 PM"},
			Contact:       Contact{Phone: "+1 (555) 789-0123", Email: "dr.wilson@bonejoint.com"},
		},
		{
			ID:            "doc-5",
			Name:          "Dr. Maria Rodriguez",
			Specialty:     "Pediatrician",
			Hospital:      "Children's Wellness Center",
			Rating:        4.9,
			Reviews:       312,
			Experience:    "10 years",
			NextAvailable: "Monday, 10 AM",
			Price:         "$100",
			About:         "Specializes in childhood development, vaccinations, and common pediatric illnesses. Believes in preventive care for children.",
			Education:     "MD, Boston Children's Hospital",
			Languages:     []string{"English", "Spanish", "Portuguese"},
			Availability:  []string{"Mon-Fri: 8 AM - 5 PM", "Sat: 9 AM - 12 PM"},
			Contact:       Contact{Phone: "+1 (555) 234-5678", Email: "dr.rodriguez@childrenswellness.com"},
		},
		{
			ID:            "doc-6",
			Name:          "Dr. Kevin Lee",
			Specialty:     "Psychiatrist",
			Hospital:      "Mental Wellness Institute",
			Rating:        4.8,
			Reviews:       87,
			Experience:    "9 years",
			NextAvailable: "Thursday, 2 PM",
			Price:         "$160",
			About:         "Specializes in anxiety disorders, depression, and stress management. Uses cognitive behavioral therapy and medication management.",
			Education:     "MD, Yale University",
			Languages:     []string{"English", "Korean"},
			Availability:  []string{"Mon, Wed, Fri: 10 AM - 6 PM", "Tue, Thu: 12 PM - 8 PM"},
			Contact:       Contact{Phone: "+1 (555) 345-6789", Email: "dr.lee@mentalwellness.com"},
		},
	}
}
