package catalog

// World Bank indicator codes organized by display category. Order matters:
// listings are returned exactly as declared here.
var categories = []category{
	{
		name: "POPULATION & DEMOGRAPHICS",
		indicators: []IndicatorKey{
			{Category: "POPULATION & DEMOGRAPHICS", Name: "Population, total", Code: "SP.POP.TOTL"},
			{Category: "POPULATION & DEMOGRAPHICS", Name: "Population growth (%)", Code: "SP.POP.GROW"},
			{Category: "POPULATION & DEMOGRAPHICS", Name: "Life expectancy at birth (total)", Code: "SP.DYN.LE00.IN"},
			{Category: "POPULATION & DEMOGRAPHICS", Name: "Birth rate", Code: "SP.DYN.CBRT.IN"},
			{Category: "POPULATION & DEMOGRAPHICS", Name: "Death rate", Code: "SP.DYN.CDRT.IN"},
			{Category: "POPULATION & DEMOGRAPHICS", Name: "Fertility rate", Code: "SP.DYN.TFRT.IN"},
			{Category: "POPULATION & DEMOGRAPHICS", Name: "Rural population (% of total)", Code: "SP.RUR.TOTL.ZS"},
			{Category: "POPULATION & DEMOGRAPHICS", Name: "Urban population (% of total)", Code: "SP.URB.TOTL.IN.ZS"},
		},
	},
	{
		name: "ECONOMY & GDP",
		indicators: []IndicatorKey{
			{Category: "ECONOMY & GDP", Name: "GDP (current US$)", Code: "NY.GDP.MKTP.CD"},
			{Category: "ECONOMY & GDP", Name: "GDP (constant 2015 US$)", Code: "NY.GDP.MKTP.KD"},
			{Category: "ECONOMY & GDP", Name: "GDP growth (%)", Code: "NY.GDP.MKTP.KD.ZG"},
			{Category: "ECONOMY & GDP", Name: "GDP per capita (current US$)", Code: "NY.GDP.PCAP.CD"},
			{Category: "ECONOMY & GDP", Name: "GNI (current US$)", Code: "NY.GNP.MKTP.CD"},
			{Category: "ECONOMY & GDP", Name: "GNI per capita (current US$)", Code: "NY.GNP.PCAP.CD"},
			{Category: "ECONOMY & GDP", Name: "Exports of goods and services (US$)", Code: "NE.EXP.GNFS.CD"},
			{Category: "ECONOMY & GDP", Name: "Imports of goods and services (US$)", Code: "NE.IMP.GNFS.CD"},
		},
	},
	{
		name: "PRICES, INFLATION & MONEY",
		indicators: []IndicatorKey{
			{Category: "PRICES, INFLATION & MONEY", Name: "Inflation, consumer prices (%)", Code: "FP.CPI.TOTL.ZG"},
			{Category: "PRICES, INFLATION & MONEY", Name: "CPI (index)", Code: "FP.CPI.TOTL"},
			{Category: "PRICES, INFLATION & MONEY", Name: "Real interest rate", Code: "FR.INR.RINR"},
			{Category: "PRICES, INFLATION & MONEY", Name: "Lending interest rate", Code: "FR.INR.LNDP"},
			{Category: "PRICES, INFLATION & MONEY", Name: "Money supply (M2 % of GDP)", Code: "FM.LBL.MQMY.GD.ZS"},
		},
	},
	{
		name: "EMPLOYMENT & LABOR MARKET",
		indicators: []IndicatorKey{
			{Category: "EMPLOYMENT & LABOR MARKET", Name: "Unemployment rate (%)", Code: "SL.UEM.TOTL.ZS"},
			{Category: "EMPLOYMENT & LABOR MARKET", Name: "Labor force, total", Code: "SL.TLF.TOTL.IN"},
			{Category: "EMPLOYMENT & LABOR MARKET", Name: "Employment in agriculture (%)", Code: "SL.AGR.EMPL.ZS"},
			{Category: "EMPLOYMENT & LABOR MARKET", Name: "Employment in industry (%)", Code: "SL.IND.EMPL.ZS"},
			{Category: "EMPLOYMENT & LABOR MARKET", Name: "Employment in services (%)", Code: "SL.SRV.EMPL.ZS"},
			{Category: "EMPLOYMENT & LABOR MARKET", Name: "Labor force participation rate", Code: "SL.TLF.CACT.ZS"},
		},
	},
	{
		name: "EDUCATION",
		indicators: []IndicatorKey{
			{Category: "EDUCATION", Name: "Literacy rate, adult (%)", Code: "SE.ADT.LITR.ZS"},
			{Category: "EDUCATION", Name: "Primary school enrollment", Code: "SE.PRM.ENRR"},
			{Category: "EDUCATION", Name: "Secondary school enrollment", Code: "SE.SEC.ENRR"},
			{Category: "EDUCATION", Name: "Tertiary school enrollment", Code: "SE.TER.ENRR"},
			{Category: "EDUCATION", Name: "Government expenditure on education", Code: "SE.XPD.TOTL.GD.ZS"},
		},
	},
	{
		name: "HEALTH",
		indicators: []IndicatorKey{
			{Category: "HEALTH", Name: "Health expenditure (% of GDP)", Code: "SH.XPD.CHEX.GD.ZS"},
			{Category: "HEALTH", Name: "Health expenditure per capita (US$)", Code: "SH.XPD.CHEX.PC.CD"},
			{Category: "HEALTH", Name: "Hospital beds per 1,000 people", Code: "SH.MED.BEDS.ZS"},
			{Category: "HEALTH", Name: "Maternal mortality ratio", Code: "SH.STA.MMRT"},
			{Category: "HEALTH", Name: "Mortality rate, under-5", Code: "SH.DYN.MORT"},
			{Category: "HEALTH", Name: "Immunization, measles (%)", Code: "SH.IMM.MEAS"},
		},
	},
	{
		name: "POVERTY & INEQUALITY",
		indicators: []IndicatorKey{
			{Category: "POVERTY & INEQUALITY", Name: "Poverty headcount ratio ($2.15/day)", Code: "SI.POV.DDAY"},
			{Category: "POVERTY & INEQUALITY", Name: "Income share held by lowest 10%", Code: "SI.DST.FRST.10"},
			{Category: "POVERTY & INEQUALITY", Name: "Income share held by highest 20%", Code: "SI.DST.05TH.20"},
			{Category: "POVERTY & INEQUALITY", Name: "Gini index", Code: "SI.POV.GINI"},
		},
	},
	{
		name: "ENVIRONMENT & CLIMATE",
		indicators: []IndicatorKey{
			{Category: "ENVIRONMENT & CLIMATE", Name: "CO2 emissions (tons per capita)", Code: "EN.ATM.CO2E.PC"},
			{Category: "ENVIRONMENT & CLIMATE", Name: "CO2 emissions (kt)", Code: "EN.ATM.CO2E.KT"},
			{Category: "ENVIRONMENT & CLIMATE", Name: "PM2.5 air pollution (µg/m³)", Code: "EN.ATM.PM25.MC.M3"},
			{Category: "ENVIRONMENT & CLIMATE", Name: "Forest area (% of land)", Code: "AG.LND.FRST.ZS"},
			{Category: "ENVIRONMENT & CLIMATE", Name: "Agricultural land (%)", Code: "AG.LND.AGRI.ZS"},
		},
	},
	{
		name: "ENERGY",
		indicators: []IndicatorKey{
			{Category: "ENERGY", Name: "Energy use per capita (kg oil equivalent)", Code: "EG.USE.PCAP.KG.OE"},
			{Category: "ENERGY", Name: "Access to electricity (%)", Code: "EG.ELC.ACCS.ZS"},
			{Category: "ENERGY", Name: "Renewable electricity output (%)", Code: "EG.ELC.RNEW.ZS"},
			{Category: "ENERGY", Name: "Electricity from fossil fuels (%)", Code: "EG.ELC.FOSL.ZS"},
		},
	},
	{
		name: "TRADE, BUSINESS & INDUSTRY",
		indicators: []IndicatorKey{
			{Category: "TRADE, BUSINESS & INDUSTRY", Name: "Merchandise trade (% of GDP)", Code: "TM.VAL.MRCH.CD.WT"},
			{Category: "TRADE, BUSINESS & INDUSTRY", Name: "Agriculture value added (% of GDP)", Code: "NV.AGR.TOTL.ZS"},
			{Category: "TRADE, BUSINESS & INDUSTRY", Name: "Industry value added (% of GDP)", Code: "NV.IND.TOTL.ZS"},
			{Category: "TRADE, BUSINESS & INDUSTRY", Name: "Services value added (% of GDP)", Code: "NV.SRV.TOTL.ZS"},
		},
	},
	{
		name: "DIGITAL, INFRASTRUCTURE & INNOVATION",
		indicators: []IndicatorKey{
			{Category: "DIGITAL, INFRASTRUCTURE & INNOVATION", Name: "Internet users (% of population)", Code: "IT.NET.USER.ZS"},
			{Category: "DIGITAL, INFRASTRUCTURE & INNOVATION", Name: "Mobile subscriptions (per 100 people)", Code: "IT.CEL.SETS.P2"},
			{Category: "DIGITAL, INFRASTRUCTURE & INNOVATION", Name: "Air transport, passengers carried", Code: "IS.AIR.PSGR"},
			{Category: "DIGITAL, INFRASTRUCTURE & INNOVATION", Name: "Patent applications (residents)", Code: "IP.PAT.RESD"},
		},
	},
}

// Supported countries, grouped roughly by region as the source registry was.
var countries = []CountryKey{
	// G7
	{ISO3: "USA", Name: "United States"},
	{ISO3: "JPN", Name: "Japan"},
	{ISO3: "DEU", Name: "Germany"},
	{ISO3: "GBR", Name: "United Kingdom"},
	{ISO3: "FRA", Name: "France"},
	{ISO3: "ITA", Name: "Italy"},
	{ISO3: "CAN", Name: "Canada"},
	// BRICS
	{ISO3: "BRA", Name: "Brazil"},
	{ISO3: "RUS", Name: "Russian Federation"},
	{ISO3: "IND", Name: "India"},
	{ISO3: "CHN", Name: "China"},
	{ISO3: "ZAF", Name: "South Africa"},
	// Europe
	{ISO3: "ESP", Name: "Spain"},
	{ISO3: "NLD", Name: "Netherlands"},
	{ISO3: "CHE", Name: "Switzerland"},
	{ISO3: "POL", Name: "Poland"},
	{ISO3: "SWE", Name: "Sweden"},
	{ISO3: "NOR", Name: "Norway"},
	{ISO3: "DNK", Name: "Denmark"},
	{ISO3: "IRL", Name: "Ireland"},
	{ISO3: "PRT", Name: "Portugal"},
	{ISO3: "GRC", Name: "Greece"},
	// Asia-Pacific
	{ISO3: "KOR", Name: "Korea, Rep."},
	{ISO3: "AUS", Name: "Australia"},
	{ISO3: "IDN", Name: "Indonesia"},
	{ISO3: "THA", Name: "Thailand"},
	{ISO3: "SGP", Name: "Singapore"},
	{ISO3: "MYS", Name: "Malaysia"},
	{ISO3: "PHL", Name: "Philippines"},
	{ISO3: "VNM", Name: "Vietnam"},
	{ISO3: "NZL", Name: "New Zealand"},
	// Middle East & North Africa
	{ISO3: "SAU", Name: "Saudi Arabia"},
	{ISO3: "TUR", Name: "Turkey"},
	{ISO3: "EGY", Name: "Egypt, Arab Rep."},
	{ISO3: "ARE", Name: "United Arab Emirates"},
	{ISO3: "ISR", Name: "Israel"},
	{ISO3: "MAR", Name: "Morocco"},
	// Latin America
	{ISO3: "MEX", Name: "Mexico"},
	{ISO3: "ARG", Name: "Argentina"},
	{ISO3: "COL", Name: "Colombia"},
	{ISO3: "CHL", Name: "Chile"},
	{ISO3: "PER", Name: "Peru"},
	// Africa
	{ISO3: "NGA", Name: "Nigeria"},
	{ISO3: "KEN", Name: "Kenya"},
	{ISO3: "ETH", Name: "Ethiopia"},
	{ISO3: "GHA", Name: "Ghana"},
}
