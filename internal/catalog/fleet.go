package catalog

import "carrental-backend/internal/domain"

// DefaultFleet returns the marketplace's standard fleet. Rates are in cents
// per day.
func DefaultFleet() []domain.Car {
	return []domain.Car{
		{
			ID: 1, Kind: domain.CarKindElectric,
			Make: "Tesla", Model: "Model 3", Year: 2023,
			Description: "A compact luxury electric sedan known for its impressive range and performance.",
			Features: []string{
				"Zero to 60 mph in 3.1 seconds",
				"Autopilot capabilities",
				"Minimalistic interior with a 15-inch touchscreen",
			},
			SeatingCapacity: 5, DailyRateCents: 7900,
			Range: "358 miles", BatteryCapacity: "75 kWh",
		},
		{
			ID: 2, Kind: domain.CarKindElectric,
			Make: "Nissan", Model: "Leaf", Year: 2023,
			Description: "One of the best-selling electric cars featuring practicality and efficiency for daily commuting.",
			Features: []string{
				"ProPILOT Assist technology",
				"e-Pedal for one-pedal driving",
				"Compact hatchback design",
			},
			SeatingCapacity: 5, DailyRateCents: 5500,
			Range: "226 miles", BatteryCapacity: "62 kWh",
		},
		{
			ID: 3, Kind: domain.CarKindElectric,
			Make: "Chevrolet", Model: "Bolt EV", Year: 2023,
			Description: "An affordable yet spacious electric hatchback with ample range and features.",
			Features: []string{
				"High-definition rear camera",
				"Smartphone integration",
				"Ample cargo space",
			},
			SeatingCapacity: 5, DailyRateCents: 5900,
			Range: "259 miles", BatteryCapacity: "66 kWh",
		},
		{
			ID: 4, Kind: domain.CarKindElectric,
			Make: "Ford", Model: "Mustang Mach-E", Year: 2023,
			Description: "A stylish electric SUV that combines high-tech features with sporty performance.",
			Features: []string{
				"Fast charging capability",
				"Ford Co-Pilot360 technology",
				"Premium sound system",
			},
			SeatingCapacity: 5, DailyRateCents: 8900,
			Range: "305 miles", BatteryCapacity: "75.7 kWh",
		},
		{
			ID: 5, Kind: domain.CarKindElectric,
			Make: "Volkswagen", Model: "ID.4", Year: 2023,
			Description: "An all-electric SUV with a roomy interior designed for everyday use.",
			Features: []string{
				"Rear View Camera",
				"Adaptive Cruise Control",
				"Customizable ambient lighting",
			},
			SeatingCapacity: 5, DailyRateCents: 7700,
			Range: "250 miles", BatteryCapacity: "77 kWh",
		},
		{
			ID: 6, Kind: domain.CarKindElectric,
			Make: "Hyundai", Model: "Kona Electric", Year: 2023,
			Description: "A compact SUV with a solid electric range and a range of standard features.",
			Features: []string{
				"Built-in navigation and safety features",
				"Regenerative braking",
				"Heated front seats",
			},
			SeatingCapacity: 5, DailyRateCents: 6500,
			Range: "258 miles", BatteryCapacity: "64 kWh",
		},
		{
			ID: 7, Kind: domain.CarKindElectric,
			Make: "Kia", Model: "EV6", Year: 2023,
			Description: "A stylish electric crossover that combines convenience with performance.",
			Features: []string{
				"Ultra-fast charging capability",
				"High-tech driver assistance",
				"Panoramic glass roof",
			},
			SeatingCapacity: 5, DailyRateCents: 8500,
			Range: "310 miles", BatteryCapacity: "77.4 kWh",
		},
		{
			ID: 8, Kind: domain.CarKindMechanical,
			Make: "Toyota", Model: "Corolla", Year: 2023,
			Description: "A reliable and fuel-efficient compact sedan; perfect for everyday use.",
			Features: []string{
				"Adaptive Cruise Control",
				"Apple CarPlay and Android Auto",
				"Automatic high beams",
			},
			SeatingCapacity: 5, DailyRateCents: 4500,
			EngineType: "1.8L 4-cylinder", Horsepower: 139,
		},
		{
			ID: 9, Kind: domain.CarKindMechanical,
			Make: "Honda", Model: "Civic", Year: 2023,
			Description: "A popular sedan known for its reliability and engaging driving experience.",
			Features: []string{
				"Sport-tuned suspension",
				"Collision Mitigation Braking System",
				"Multi-angle rearview camera",
			},
			SeatingCapacity: 5, DailyRateCents: 5000,
			EngineType: "2.0L 4-cylinder", Horsepower: 158,
		},
		{
			ID: 10, Kind: domain.CarKindMechanical,
			Make: "Ford", Model: "Escape", Year: 2023,
			Description: "A compact SUV with practical features and a comfortable ride for families.",
			Features: []string{
				"Ford Co-Pilot360 safety features",
				"Available hybrid and plug-in hybrid options",
				"Sync 4 infotainment system",
			},
			SeatingCapacity: 5, DailyRateCents: 5500,
			EngineType: "1.5L EcoBoost", Horsepower: 181,
		},
		{
			ID: 11, Kind: domain.CarKindMechanical,
			Make: "Chevrolet", Model: "Malibu", Year: 2023,
			Description: "A midsize sedan that provides a spacious interior and a smooth driving experience.",
			Features: []string{
				"Chevrolet Infotainment System",
				"Available all-wheel drive",
				"Lane Departure Warning",
			},
			SeatingCapacity: 5, DailyRateCents: 5200,
			EngineType: "1.5L Turbocharged 4-cylinder", Horsepower: 160,
		},
		{
			ID: 12, Kind: domain.CarKindMechanical,
			Make: "Hyundai", Model: "Elantra", Year: 2023,
			Description: "A stylish compact sedan that combines modern design with advanced technology.",
			Features: []string{
				"Blind-Spot Collision Warning",
				"LED headlights",
				"10.25-inch touchscreen display",
			},
			SeatingCapacity: 5, DailyRateCents: 4900,
			EngineType: "2.0L 4-cylinder", Horsepower: 147,
		},
		{
			ID: 13, Kind: domain.CarKindMechanical,
			Make: "Nissan", Model: "Altima", Year: 2023,
			Description: "Comfortable midsize sedan known for its spaciousness and performance features.",
			Features: []string{
				"Intelligent All-Wheel Drive",
				"Nissan Safety Shield 360",
				"NissanConnect infotainment",
			},
			SeatingCapacity: 5, DailyRateCents: 5400,
			EngineType: "2.5L 4-cylinder", Horsepower: 188,
		},
		{
			ID: 14, Kind: domain.CarKindMechanical,
			Make: "Mazda", Model: "CX-5", Year: 2023,
			Description: "A compact SUV renowned for its upscale interior finishes and engaging driving dynamics.",
			Features: []string{
				"i-Activsense safety technologies",
				"Leatherette upholstery",
				"Available turbocharged engine",
			},
			SeatingCapacity: 5, DailyRateCents: 6800,
			EngineType: "2.5L 4-cylinder", Horsepower: 187,
		},
	}
}
