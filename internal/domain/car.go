package domain

import "time"

// CarType categorizes the body style of a car.
type CarType string

const (
	CarTypeHatch       CarType = "hatch"
	CarTypeSedan       CarType = "sedan"
	CarTypeSUV         CarType = "suv"
	CarTypeHatchback   CarType = "hatchback"
	CarTypeCoupe       CarType = "coupe"
	CarTypeConvertible CarType = "convertible"
	CarTypeWagon       CarType = "wagon"
	CarTypeVan         CarType = "van"
	CarTypePickup      CarType = "pickup"
	CarTypeOther       CarType = "other"
)

var carTypes = map[CarType]bool{
	CarTypeHatch: true, CarTypeSedan: true, CarTypeSUV: true,
	CarTypeHatchback: true, CarTypeCoupe: true, CarTypeConvertible: true,
	CarTypeWagon: true, CarTypeVan: true, CarTypePickup: true, CarTypeOther: true,
}

// IsValid reports whether the car type is one of the known values.
func (t CarType) IsValid() bool { return carTypes[t] }

// CarStatus tracks the listing state of a car.
type CarStatus string

const (
	CarStatusAvailable   CarStatus = "available"
	CarStatusUnavailable CarStatus = "unavailable"
	CarStatusSold        CarStatus = "sold"
	CarStatusMaintenance CarStatus = "maintenance"
	CarStatusReserved    CarStatus = "reserved"
)

var carStatuses = map[CarStatus]bool{
	CarStatusAvailable: true, CarStatusUnavailable: true, CarStatusSold: true,
	CarStatusMaintenance: true, CarStatusReserved: true,
}

// IsValid reports whether the status is one of the known values.
func (s CarStatus) IsValid() bool { return carStatuses[s] }

// CarCondition describes whether a car is new or used.
type CarCondition string

const (
	CarConditionNew       CarCondition = "new"
	CarConditionUsed      CarCondition = "used"
	CarConditionCertified CarCondition = "certified pre-owned"
)

var carConditions = map[CarCondition]bool{
	CarConditionNew: true, CarConditionUsed: true, CarConditionCertified: true,
}

// IsValid reports whether the condition is one of the known values.
func (c CarCondition) IsValid() bool { return carConditions[c] }

// CarColor enumerates the supported paint colors.
type CarColor string

const (
	CarColorBlack  CarColor = "black"
	CarColorWhite  CarColor = "white"
	CarColorSilver CarColor = "silver"
	CarColorGray   CarColor = "gray"
	CarColorRed    CarColor = "red"
	CarColorBlue   CarColor = "blue"
	CarColorBrown  CarColor = "brown"
	CarColorGreen  CarColor = "green"
	CarColorYellow CarColor = "yellow"
	CarColorOrange CarColor = "orange"
	CarColorPurple CarColor = "purple"
	CarColorOther  CarColor = "other"
)

var carColors = map[CarColor]bool{
	CarColorBlack: true, CarColorWhite: true, CarColorSilver: true,
	CarColorGray: true, CarColorRed: true, CarColorBlue: true,
	CarColorBrown: true, CarColorGreen: true, CarColorYellow: true,
	CarColorOrange: true, CarColorPurple: true, CarColorOther: true,
}

// IsValid reports whether the color is one of the known values.
func (c CarColor) IsValid() bool { return carColors[c] }

// TransmissionType enumerates the supported transmissions.
type TransmissionType string

const (
	TransmissionAutomatic     TransmissionType = "automatic"
	TransmissionManual        TransmissionType = "manual"
	TransmissionSemiAutomatic TransmissionType = "semi-automatic"
	TransmissionCVT           TransmissionType = "cvt"
)

var transmissionTypes = map[TransmissionType]bool{
	TransmissionAutomatic: true, TransmissionManual: true,
	TransmissionSemiAutomatic: true, TransmissionCVT: true,
}

// IsValid reports whether the transmission is one of the known values.
func (t TransmissionType) IsValid() bool { return transmissionTypes[t] }

// FuelType enumerates the supported fuels.
type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelEthanol  FuelType = "ethanol"
	FuelFlex     FuelType = "flex"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
	FuelOther    FuelType = "other"
)

var fuelTypes = map[FuelType]bool{
	FuelGasoline: true, FuelEthanol: true, FuelFlex: true,
	FuelDiesel: true, FuelElectric: true, FuelHybrid: true, FuelOther: true,
}

// IsValid reports whether the fuel type is one of the known values.
func (f FuelType) IsValid() bool { return fuelTypes[f] }

// Car represents a vehicle listed in the marketplace.
type Car struct {
	ID           int64
	CarType      CarType
	Model        string
	FactoryYear  int
	ModelYear    int
	Color        CarColor
	FuelType     FuelType
	Transmission TransmissionType
	Condition    CarCondition
	Status       CarStatus
	Mileage      int
	Plate        string
	Price        float64
	Description  string
	BrandID      int64
	OwnerID      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CarDetail is the read-time projection of a car with its brand and owner
// joined in as value objects. Car reads always return this shape; there is
// no lazily resolved relationship graph.
type CarDetail struct {
	Car
	Brand Brand
	Owner User
}
