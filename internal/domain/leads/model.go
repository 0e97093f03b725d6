package leads

// RequestType discrimina el formulario de origen.
type RequestType string

const (
	RequestTypePhone  RequestType = "phone"
	RequestTypeOnline RequestType = "online"
)

func (t RequestType) Valid() bool {
	return t == RequestTypePhone || t == RequestTypeOnline
}

// TitleLabel es la etiqueta localizada que va en el título del ticket.
func (t RequestType) TitleLabel() string {
	if t == RequestTypePhone {
		return "전화"
	}
	return "온라인"
}

// ExportLabel es la etiqueta que se muestra en el export.
// Vacío cae en la rama de consulta telefónica; un valor desconocido se devuelve tal cual.
func (t RequestType) ExportLabel() string {
	switch t {
	case RequestTypeOnline:
		return "온라인분석"
	case RequestTypePhone, "":
		return "전화상담"
	default:
		return string(t)
	}
}

const (
	DefaultSite     = "unknown"
	MissingSite     = "N/A"
	PetNamePending  = "펫이름 미입력"
	labelPrefixType = "type:"
	labelPrefixSite = "site:"
)

// Submission es el registro canónico que se persiste como payload del ticket.
// Los tags JSON son el formato de cable: no renombrar.
type Submission struct {
	Type RequestType `json:"type"`
	Site string      `json:"site"`

	// Solicitante
	Name     string `json:"name"`
	Phone    string `json:"phone"` // 010-######## tal como lo envía el formulario
	Gender   string `json:"gender"`
	Birth    string `json:"birth"` // YYYYMMDD
	RRNFront string `json:"rrnFront"`
	RRNBack  string `json:"rrnBack"`
	RRNFull  string `json:"rrnFull"`

	// Mascota
	PetBreed     string `json:"petBreed"`
	PetName      string `json:"petName"`
	PetGender    string `json:"petGender"`
	PetBirthDate string `json:"petBirthDate"` // YYYYMMDD
	PetRegNumber string `json:"petRegNumber"`
	PetNeutered  string `json:"petNeutered"`

	Notes string `json:"notes"`

	RequestedAt string `json:"requestedAt"` // RFC3339
}

// LeadRecord es una fila del export. El orden de los campos es el orden de columnas.
type LeadRecord struct {
	Site         string `json:"site"`
	RequestedAt  string `json:"requested_at"`
	RequestType  string `json:"request_type"`
	Name         string `json:"name"`
	BirthOrRRN   string `json:"birth_or_rrn"`
	Gender       string `json:"gender"`
	Phone        string `json:"phone"`
	PetBreed     string `json:"pet_breed"`
	PetName      string `json:"pet_name"`
	PetGender    string `json:"pet_gender"`
	PetBirthDate string `json:"pet_birth_date"`
	PetRegNumber string `json:"pet_reg_number"`
	PetNeutered  string `json:"pet_neutered"`
}
