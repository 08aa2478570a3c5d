package roster

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func samplePatients() []Patient {
	return []Patient{
		{
			ID: 1, Name: "John Doe", Age: 45, Gender: "Male", BloodType: "O+",
			LastVisit: day(2024, time.January, 15), NextAppointment: day(2024, time.February, 20),
			Status: "Active", Condition: "Hypertension", Severity: "Moderate",
			Phone: "+1 (555) 123-4567", Email: "john.doe@example.com",
			Address:          "123 Main St, City, State 12345",
			EmergencyContact: "Jane Doe (Wife) +1 (555) 987-6543",
			Allergies:        []string{"Penicillin", "Peanuts"},
			Medications:      []string{"Lisinopril 10mg", "Metformin 500mg"},
			Notes:            "Patient needs regular blood pressure monitoring.",
		},
		{
			ID: 2, Name: "Sarah Miller", Age: 32, Gender: "Female", BloodType: "A+",
			LastVisit: day(2024, time.January, 20), NextAppointment: day(2024, time.February, 25),
			Status: "Active", Condition: "Diabetes Type 2", Severity: "Mild",
			Phone: "+1 (555) 234-5678", Email: "sarah.m@example.com",
			Address:          "456 Oak Ave, City, State 12345",
			EmergencyContact: "Mike Miller (Husband) +1 (555) 876-5432",
			Allergies:        []string{"Sulfa Drugs"},
			Medications:      []string{"Metformin 1000mg", "Insulin Glargine"},
			Notes:            "Well-controlled with current medication.",
		},
		{
			ID: 3, Name: "Robert Chen", Age: 58, Gender: "Male", BloodType: "B+",
			LastVisit: day(2024, time.January, 10), NextAppointment: day(2024, time.February, 15),
			Status: "Active", Condition: "Asthma", Severity: "Moderate",
			Phone: "+1 (555) 345-6789", Email: "robert.c@example.com",
			Address:          "789 Pine Rd, City, State 12345",
			EmergencyContact: "Lisa Chen (Wife) +1 (555) 765-4321",
			Allergies:        []string{"Dust Mites", "Pollen"},
			Medications:      []string{"Albuterol Inhaler", "Fluticasone"},
			Notes:            "Seasonal exacerbations expected.",
		},
		{
			ID: 4, Name: "Maria Garcia", Age: 29, Gender: "Female", BloodType: "AB+",
			LastVisit: day(2023, time.December, 15), NextAppointment: day(2024, time.March, 1),
			Status: "Inactive", Condition: "Migraine", Severity: "Mild",
			Phone: "+1 (555) 456-7890", Email: "maria.g@example.com",
			Address:          "321 Elm St, City, State 12345",
			EmergencyContact: "Carlos Garcia (Brother) +1 (555) 654-3210",
			Allergies:        []string{},
			Medications:      []string{"Sumatriptan 50mg"},
			Notes:            "Triggers include stress and lack of sleep.",
		},
		{
			ID: 5, Name: "David Wilson", Age: 67, Gender: "Male", BloodType: "O-",
			LastVisit: day(2024, time.January, 25), NextAppointment: day(2024, time.February, 10),
			Status: "Active", Condition: "Coronary Artery Disease", Severity: "Severe",
			Phone: "+1 (555) 567-8901", Email: "david.w@example.com",
			Address:          "654 Maple Dr, City, State 12345",
			EmergencyContact: "Susan Wilson (Daughter) +1 (555) 543-2109",
			Allergies:        []string{"Aspirin"},
			Medications:      []string{"Clopidogrel 75mg", "Atorvastatin 40mg", "Metoprolol 25mg"},
			Notes:            "Post-stent placement, cardiac rehab in progress.",
		},
		{
			ID: 6, Name: "Emily Johnson", Age: 41, Gender: "Female", BloodType: "A-",
			LastVisit: day(2024, time.January, 18), NextAppointment: day(2024, time.February, 22),
			Status: "Active", Condition: "Hypothyroidism", Severity: "Mild",
			Phone: "+1 (555) 678-9012", Email: "emily.j@example.com",
			Address:          "987 Cedar Ln, City, State 12345",
			EmergencyContact: "Tom Johnson (Husband) +1 (555) 432-1098",
			Allergies:        []string{"Latex"},
			Medications:      []string{"Levothyroxine 75mcg"},
			Notes:            "Annual TSH check due.",
		},
	}
}
