package spacetraders

import "github.com/Adda-Baaj/spacetraders-go/pkg/shape"

// FactionSymbol identifies a faction.
type FactionSymbol string

const (
	FactionCosmic   FactionSymbol = "COSMIC"
	FactionVoid     FactionSymbol = "VOID"
	FactionGalactic FactionSymbol = "GALACTIC"
	FactionQuantum  FactionSymbol = "QUANTUM"
	FactionDominion FactionSymbol = "DOMINION"
	FactionAstro    FactionSymbol = "ASTRO"
	FactionCorsairs FactionSymbol = "CORSAIRS"
	FactionObsidian FactionSymbol = "OBSIDIAN"
	FactionAegis    FactionSymbol = "AEGIS"
	FactionUnited   FactionSymbol = "UNITED"
	FactionSolitary FactionSymbol = "SOLITARY"
	FactionCobalt   FactionSymbol = "COBALT"
	FactionOmega    FactionSymbol = "OMEGA"
	FactionEcho     FactionSymbol = "ECHO"
	FactionLords    FactionSymbol = "LORDS"
	FactionCult     FactionSymbol = "CULT"
	FactionAncients FactionSymbol = "ANCIENTS"
	FactionShadow   FactionSymbol = "SHADOW"
	FactionEthereal FactionSymbol = "ETHEREAL"
)

// ContractType is the kind of work a contract asks for.
type ContractType string

const (
	ContractProcurement ContractType = "PROCUREMENT"
	ContractTransport   ContractType = "TRANSPORT"
	ContractShuttle     ContractType = "SHUTTLE"
)

// SystemType is the kind of star at the center of a system.
type SystemType string

const (
	SystemNeutronStar SystemType = "NEUTRON_STAR"
	SystemRedStar     SystemType = "RED_STAR"
	SystemOrangeStar  SystemType = "ORANGE_STAR"
	SystemBlueStar    SystemType = "BLUE_STAR"
	SystemYoungStar   SystemType = "YOUNG_STAR"
	SystemWhiteDwarf  SystemType = "WHITE_DWARF"
	SystemBlackHole   SystemType = "BLACK_HOLE"
	SystemHypergiant  SystemType = "HYPERGIANT"
	SystemNebula      SystemType = "NEBULA"
	SystemUnstable    SystemType = "UNSTABLE"
)

// WaypointType is the kind of location a waypoint is.
type WaypointType string

const (
	WaypointPlanet                WaypointType = "PLANET"
	WaypointGasGiant              WaypointType = "GAS_GIANT"
	WaypointMoon                  WaypointType = "MOON"
	WaypointOrbitalStation        WaypointType = "ORBITAL_STATION"
	WaypointJumpGate              WaypointType = "JUMP_GATE"
	WaypointAsteroidField         WaypointType = "ASTEROID_FIELD"
	WaypointAsteroid              WaypointType = "ASTEROID"
	WaypointEngineeredAsteroid    WaypointType = "ENGINEERED_ASTEROID"
	WaypointAsteroidBase          WaypointType = "ASTEROID_BASE"
	WaypointNebula                WaypointType = "NEBULA"
	WaypointDebrisField           WaypointType = "DEBRIS_FIELD"
	WaypointGravityWell           WaypointType = "GRAVITY_WELL"
	WaypointArtificialGravityWell WaypointType = "ARTIFICIAL_GRAVITY_WELL"
	WaypointFuelStation           WaypointType = "FUEL_STATION"
)

// ShipNavStatus is where a ship currently is relative to its waypoint.
type ShipNavStatus string

const (
	NavInTransit ShipNavStatus = "IN_TRANSIT"
	NavInOrbit   ShipNavStatus = "IN_ORBIT"
	NavDocked    ShipNavStatus = "DOCKED"
)

// FlightMode trades fuel for speed.
type FlightMode string

const (
	FlightDrift   FlightMode = "DRIFT"
	FlightStealth FlightMode = "STEALTH"
	FlightCruise  FlightMode = "CRUISE"
	FlightBurn    FlightMode = "BURN"
)

// ShipRole is the registered role of a ship.
type ShipRole string

const (
	RoleFabricator  ShipRole = "FABRICATOR"
	RoleHarvester   ShipRole = "HARVESTER"
	RoleHauler      ShipRole = "HAULER"
	RoleInterceptor ShipRole = "INTERCEPTOR"
	RoleExcavator   ShipRole = "EXCAVATOR"
	RoleTransport   ShipRole = "TRANSPORT"
	RoleRepair      ShipRole = "REPAIR"
	RoleSurveyor    ShipRole = "SURVEYOR"
	RoleCommand     ShipRole = "COMMAND"
	RoleCarrier     ShipRole = "CARRIER"
	RolePatrol      ShipRole = "PATROL"
	RoleSatellite   ShipRole = "SATELLITE"
	RoleExplorer    ShipRole = "EXPLORER"
	RoleRefinery    ShipRole = "REFINERY"
)

// CrewRotation is the shift schedule of a ship's crew.
type CrewRotation string

const (
	RotationStrict  CrewRotation = "STRICT"
	RotationRelaxed CrewRotation = "RELAXED"
)

// SupplyLevel describes how much of a good a market holds.
type SupplyLevel string

const (
	SupplyScarce   SupplyLevel = "SCARCE"
	SupplyLimited  SupplyLevel = "LIMITED"
	SupplyModerate SupplyLevel = "MODERATE"
	SupplyHigh     SupplyLevel = "HIGH"
	SupplyAbundant SupplyLevel = "ABUNDANT"
)

// ActivityLevel describes how actively a good is traded.
type ActivityLevel string

const (
	ActivityWeak       ActivityLevel = "WEAK"
	ActivityGrowing    ActivityLevel = "GROWING"
	ActivityStrong     ActivityLevel = "STRONG"
	ActivityRestricted ActivityLevel = "RESTRICTED"
)

// ShipType is a purchasable ship model.
type ShipType string

const (
	ShipProbe             ShipType = "SHIP_PROBE"
	ShipMiningDrone       ShipType = "SHIP_MINING_DRONE"
	ShipSiphonDrone       ShipType = "SHIP_SIPHON_DRONE"
	ShipInterceptor       ShipType = "SHIP_INTERCEPTOR"
	ShipLightHauler       ShipType = "SHIP_LIGHT_HAULER"
	ShipCommandFrigate    ShipType = "SHIP_COMMAND_FRIGATE"
	ShipExplorer          ShipType = "SHIP_EXPLORER"
	ShipHeavyFreighter    ShipType = "SHIP_HEAVY_FREIGHTER"
	ShipLightShuttle      ShipType = "SHIP_LIGHT_SHUTTLE"
	ShipOreHound          ShipType = "SHIP_ORE_HOUND"
	ShipRefiningFreighter ShipType = "SHIP_REFINING_FREIGHTER"
	ShipSurveyor          ShipType = "SHIP_SURVEYOR"
	ShipBulkFreighter     ShipType = "SHIP_BULK_FREIGHTER"
)

// Open vocabularies. The server adds members over time, so these are checked
// for symbol syntax only.
type (
	TradeSymbol            string
	FactionTraitSymbol     string
	WaypointTraitSymbol    string
	WaypointModifierSymbol string
	ShipFrameSymbol        string
	ShipReactorSymbol      string
	ShipEngineSymbol       string
	ShipModuleSymbol       string
	ShipMountSymbol        string
	ShipConditionEvent     string
)

var (
	factionSymbolShape = shape.Enum(
		FactionCosmic, FactionVoid, FactionGalactic, FactionQuantum, FactionDominion,
		FactionAstro, FactionCorsairs, FactionObsidian, FactionAegis, FactionUnited,
		FactionSolitary, FactionCobalt, FactionOmega, FactionEcho, FactionLords,
		FactionCult, FactionAncients, FactionShadow, FactionEthereal,
	)
	systemTypeShape = shape.Enum(
		SystemNeutronStar, SystemRedStar, SystemOrangeStar, SystemBlueStar, SystemYoungStar,
		SystemWhiteDwarf, SystemBlackHole, SystemHypergiant, SystemNebula, SystemUnstable,
	)
	waypointTypeShape = shape.Enum(
		WaypointPlanet, WaypointGasGiant, WaypointMoon, WaypointOrbitalStation, WaypointJumpGate,
		WaypointAsteroidField, WaypointAsteroid, WaypointEngineeredAsteroid, WaypointAsteroidBase,
		WaypointNebula, WaypointDebrisField, WaypointGravityWell, WaypointArtificialGravityWell,
		WaypointFuelStation,
	)
	shipRoleShape = shape.Enum(
		RoleFabricator, RoleHarvester, RoleHauler, RoleInterceptor, RoleExcavator, RoleTransport,
		RoleRepair, RoleSurveyor, RoleCommand, RoleCarrier, RolePatrol, RoleSatellite,
		RoleExplorer, RoleRefinery,
	)
	shipTypeShape = shape.Enum(
		ShipProbe, ShipMiningDrone, ShipSiphonDrone, ShipInterceptor, ShipLightHauler,
		ShipCommandFrigate, ShipExplorer, ShipHeavyFreighter, ShipLightShuttle, ShipOreHound,
		ShipRefiningFreighter, ShipSurveyor, ShipBulkFreighter,
	)

	contractTypeShape = shape.Enum(ContractProcurement, ContractTransport, ContractShuttle)
	navStatusShape    = shape.Enum(NavInTransit, NavInOrbit, NavDocked)
	flightModeShape   = shape.Enum(FlightDrift, FlightStealth, FlightCruise, FlightBurn)
	crewRotationShape = shape.Enum(RotationStrict, RotationRelaxed)
	supplyLevelShape  = shape.Enum(SupplyScarce, SupplyLimited, SupplyModerate, SupplyHigh, SupplyAbundant)
	activityShape     = shape.Enum(ActivityWeak, ActivityGrowing, ActivityStrong, ActivityRestricted)

	tradeSymbolShape      = shape.Symbol[TradeSymbol]()
	factionTraitShape     = shape.Symbol[FactionTraitSymbol]()
	waypointTraitShape    = shape.Symbol[WaypointTraitSymbol]()
	waypointModifierShape = shape.Symbol[WaypointModifierSymbol]()
	frameSymbolShape      = shape.Symbol[ShipFrameSymbol]()
	reactorSymbolShape    = shape.Symbol[ShipReactorSymbol]()
	engineSymbolShape     = shape.Symbol[ShipEngineSymbol]()
	moduleSymbolShape     = shape.Symbol[ShipModuleSymbol]()
	mountSymbolShape      = shape.Symbol[ShipMountSymbol]()
	conditionEventShape   = shape.Symbol[ShipConditionEvent]()
	waypointSymbolShape   = shape.Symbol[string]()
	systemSymbolShape     = shape.Symbol[string]()
)
