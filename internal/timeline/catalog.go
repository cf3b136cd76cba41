package timeline

// DefaultCatalog returns the built-in milestone list. Ages are coarse
// population heuristics.
func DefaultCatalog() []Milestone {
	return []Milestone{
		Between("Infancy", 0, 1, Bio, 3, "Rapid synaptogenesis; sleep dominates."),
		Between("Early childhood", 1, 5, Bio, 2, "Language explosion, motor skills."),
		Between("School-age childhood", 5, 12, Bio, 2, "Steady growth; concrete thinking."),
		Between("Puberty window", 10, 14, Bio, 3, "Hormonal changes and growth spurts."),
		Between("Peak processing speed", 18, 25, Bio, 2, "Working memory/reaction time peak."),
		PointAt("Prefrontal maturation ≈ complete", 25, Bio, 2, "Executive function largely mature."),
		Between("Peak VO2 / recovery", 20, 30, Bio, 1, "Aerobic capacity high; fastest recovery."),
		PointAt("Bone density peak", 30, Bio, 2, "After peak, gradual decline begins."),
		PointAt("Testosterone gradual decline starts", 30, Bio, 1, "~1%/yr on average (wide variance)."),
		PointAt("Female fertility begins notable decline", 32, Bio, 3, "Fertility drop accelerates after ~37."),
		Between("Presbyopia common onset", 40, 45, Bio, 1, "Near-focus difficulty."),
		Between("Sarcopenia acceleration", 40, 60, Bio, 2, "Strength/muscle loss without training."),
		Between("Perimenopause → menopause (median)", 45, 51, Bio, 3, "Cycle/estrogen changes; menopause ~51."),
		Between("Cardiometabolic risk climbs", 50, 70, Bio, 2, "BP, lipids, insulin resistance trends."),
		Between("Hearing high-freq loss", 50, 80, Bio, 1, "Presbycusis gradually increases."),
		Between("Cognitive decline risk ↑", 65, 90, Bio, 2, "Heterogeneous; lifestyle matters."),

		PointAt("Start primary school", 5, Soc, 2, "Kindergarten/Year 1."),
		PointAt("Finish high school", 18, Soc, 3, "Diploma/GED equivalent."),
		PointAt("Finish undergrad (typical)", 22, Soc, 2, "If pursued; many paths exist."),
		PointAt("Median US first marriage ~", 30, Soc, 1, "Varies by region/education/identity."),
		Between("First child (median US)", 27, 30, Soc, 2, "Highly variable; optional."),
		Between("Peak earnings window", 45, 55, Soc, 2, "Industry dependent; wide spread."),
		PointAt("Social Security early eligibility", 62, Soc, 1, "US-specific; future adjustable."),
		PointAt("Medicare eligibility", 65, Soc, 2, "US-specific milestone."),
		Between("Common retirement window", 65, 70, Soc, 2, "Many work longer or change careers."),
	}
}
