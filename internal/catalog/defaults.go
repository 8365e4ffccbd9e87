package catalog

// Default returns a catalog populated with the built-in tables.
//
// Weight factors convert to kilograms, volume factors to liters. Densities
// are kg per liter, so multiplying a volume factor by a density yields a
// weight factor. Herb densities share one value; loosely packed leaves all
// weigh about the same per cup.
func Default() *Catalog {
	c := New()

	c.SetUnit("kg", Unit{Factor: 1, Category: Weight})
	c.SetUnit("g", Unit{Factor: 1e-3, Category: Weight})
	c.SetUnit("mg", Unit{Factor: 1e-6, Category: Weight})
	c.SetUnit("lb", Unit{Factor: 0.4536, Category: Weight})
	c.SetUnit("oz", Unit{Factor: 0.02835, Category: Weight})

	c.SetUnit("l", Unit{Factor: 1, Category: Volume})
	c.SetUnit("dl", Unit{Factor: 0.1, Category: Volume})
	c.SetUnit("cl", Unit{Factor: 0.01, Category: Volume})
	c.SetUnit("ml", Unit{Factor: 1e-3, Category: Volume})
	c.SetUnit("gal", Unit{Factor: 3.785, Category: Volume})
	c.SetUnit("cup", Unit{Factor: 0.2366, Category: Volume})
	c.SetUnit("floz", Unit{Factor: 0.02957, Category: Volume})
	c.SetUnit("tbs", Unit{Factor: 0.01479, Category: Volume})
	c.SetUnit("ts", Unit{Factor: 0.00493, Category: Volume})

	c.SetUnit("c", Unit{Factor: ScaleCelsius, Category: Temperature})
	c.SetUnit("f", Unit{Factor: ScaleFahrenheit, Category: Temperature})

	c.SetDensity("flour", 0.5283)
	c.SetDensity("almond-flour", 0.5679)
	c.SetDensity("butter", 0.9586)
	c.SetDensity("sugar", 0.8453)
	c.SetDensity("salt", 1.1548)
	c.SetDensity("baking-powder", 0.7208)
	c.SetDensity("baking-soda", 0.9337)
	c.SetDensity("tomato-paste", 1.1075)
	c.SetDensity("tomato-puree", 1.1075)
	c.SetDensity("rice", 0.8453)
	c.SetDensity("tofu", 1.0480)
	c.SetDensity("parmesan", 0.4227)
	c.SetDensity("oil", 0.9215)
	c.SetDensity("water", 1.0000)

	for _, herb := range []string{"parsley", "basil", "cilantro", "dill", "herbs"} {
		c.SetDensity(herb, 0.10566)
	}

	return c
}
