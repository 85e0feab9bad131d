package records

import (
	"encoding/json"
	"strconv"
	"strings"

	"motordesk/internal/core/calendar"
	"motordesk/internal/core/types"
)

// Raw document shapes as they exist in the migrated collections.
//
// The legacy store accumulated several names for the same logical field
// (a sale's vehicle brand may appear as "marca" or "motoMarca"; a vehicle's
// attributes may sit flat or under an "adicionais" wrapper). Each Raw type
// lists every known variant and its Canonical method applies the documented
// pick order. Field tags keep the original document keys.

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// RawSale is a sale document as stored.
type RawSale struct {
	ID string `json:"id"`

	// Date variants, oldest name last.
	DataVenda    any `json:"dataVenda,omitempty"`
	Data         any `json:"data,omitempty"`
	DataRegistro any `json:"dataRegistro,omitempty"`

	ValorVenda any `json:"valorVenda,omitempty"`

	VendedorResponsavel string `json:"vendedorResponsavel,omitempty"`
	Vendedor            string `json:"vendedor,omitempty"`

	ClienteNome     string `json:"clienteNome,omitempty"`
	ClienteCPF      string `json:"clienteCPF,omitempty"`
	CPF             string `json:"cpf,omitempty"`
	ClienteTelefone string `json:"clienteTelefone,omitempty"`
	Telefone        string `json:"telefone,omitempty"`
	ClienteEndereco string `json:"clienteEndereco,omitempty"`
	Endereco        string `json:"endereco,omitempty"`
	ClienteCidade   string `json:"clienteCidade,omitempty"`
	Cidade          string `json:"cidade,omitempty"`
	ClienteEstado   string `json:"clienteEstado,omitempty"`
	Estado          string `json:"estado,omitempty"`

	Marca     string `json:"marca,omitempty"`
	MotoMarca string `json:"motoMarca,omitempty"`
	Modelo    string `json:"modelo,omitempty"`
	Ano       any    `json:"ano,omitempty"`
	MotoAno   any    `json:"motoAno,omitempty"`
	Chassi    string `json:"chassi,omitempty"`
	MotoChassi string `json:"motoChassi,omitempty"`
	Placa     string `json:"placa,omitempty"`
	MotoPlaca string `json:"motoPlaca,omitempty"`
	Cor       string `json:"cor,omitempty"`
	MotoCor   string `json:"motoCor,omitempty"`
	Renavam     string `json:"renavam,omitempty"`
	MotoRenavam string `json:"motoRenavam,omitempty"`

	FormaPagamento    string `json:"formaPagamento,omitempty"`
	Entrada           any    `json:"entrada,omitempty"`
	Observacao        string `json:"observacao,omitempty"`
	DetalhesPagamento string `json:"detalhesPagamento,omitempty"`
	Foto              string `json:"foto,omitempty"`
}

// Canonical maps the raw sale into a SaleRecord.
func (r RawSale) Canonical() SaleRecord {
	return SaleRecord{
		ID:     r.ID,
		Date:   calendar.FromAny(pickAny(r.DataVenda, r.Data, r.DataRegistro)),
		Amount: types.ParseAmount(r.ValorVenda),
		Seller: firstNonEmpty(r.VendedorResponsavel, r.Vendedor),

		BuyerName:    strings.TrimSpace(r.ClienteNome),
		BuyerTaxID:   firstNonEmpty(r.ClienteCPF, r.CPF),
		BuyerPhone:   firstNonEmpty(r.ClienteTelefone, r.Telefone),
		BuyerAddress: firstNonEmpty(r.ClienteEndereco, r.Endereco),
		BuyerCity:    firstNonEmpty(r.ClienteCidade, r.Cidade),
		BuyerState:   firstNonEmpty(r.ClienteEstado, r.Estado),

		Brand:   firstNonEmpty(r.MotoMarca, r.Marca),
		Model:   strings.TrimSpace(r.Modelo),
		Year:    firstNonEmpty(asString(r.MotoAno), asString(r.Ano)),
		Chassis: firstNonEmpty(r.MotoChassi, r.Chassi),
		Plate:   firstNonEmpty(r.MotoPlaca, r.Placa),
		Color:   firstNonEmpty(r.MotoCor, r.Cor),
		Renavam: firstNonEmpty(r.MotoRenavam, r.Renavam),

		PaymentMethod:  strings.TrimSpace(r.FormaPagamento),
		DownPayment:    types.ParseAmount(r.Entrada),
		PaymentDetails: strings.TrimSpace(r.DetalhesPagamento),
		Notes:          strings.TrimSpace(r.Observacao),
		PhotoURL:       strings.TrimSpace(r.Foto),
	}
}

// asString renders scalar document values (strings or numbers) for fields
// that are displayed verbatim, like year and odometer.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

func pickAny(vals ...any) any {
	for _, v := range vals {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			if strings.TrimSpace(t) != "" {
				return t
			}
		default:
			return v
		}
	}
	return nil
}

// rawMotoRef is the embedded vehicle reference on an expense document.
type rawMotoRef struct {
	Modelo string `json:"modelo,omitempty"`
	Placa  string `json:"placa,omitempty"`
	Chassi string `json:"chassi,omitempty"`
}

// RawExpense is an expense document as stored.
type RawExpense struct {
	ID          string      `json:"id"`
	DataDespesa any         `json:"dataDespesa,omitempty"`
	Data        any         `json:"data,omitempty"`
	Valor       any         `json:"valor,omitempty"`
	Categoria   string      `json:"categoria,omitempty"`
	Tipo        string      `json:"tipo,omitempty"`
	Descricao   string      `json:"descricao,omitempty"`
	Obs         string      `json:"obs,omitempty"`
	MotoID      string      `json:"motoId,omitempty"`
	Moto        *rawMotoRef `json:"moto,omitempty"`
}

// NewRawExpense renders a canonical expense in the stored document shape, so
// rows written by this service stay readable by the same mapping that reads
// the migrated ones. The amount is stored as a JSON number.
func NewRawExpense(e ExpenseRecord) RawExpense {
	r := RawExpense{
		ID:          e.ID,
		DataDespesa: e.Date.String(),
		Valor:       json.Number(e.Amount.String()),
		Categoria:   e.Category,
		Descricao:   e.Description,
		Obs:         e.Notes,
		MotoID:      e.VehicleID,
	}
	if e.Vehicle != nil {
		r.Moto = &rawMotoRef{
			Modelo: e.Vehicle.Model,
			Placa:  e.Vehicle.Plate,
			Chassi: e.Vehicle.Chassis,
		}
	}
	return r
}

// Canonical maps the raw expense into an ExpenseRecord.
//
// The shop/general discriminator is derived from the vehicle link: an
// expense tied to a vehicle is an itemized shop cost, an unlinked one is
// store overhead.
func (r RawExpense) Canonical() ExpenseRecord {
	e := ExpenseRecord{
		ID:          r.ID,
		Date:        calendar.FromAny(pickAny(r.DataDespesa, r.Data)),
		Amount:      types.ParseAmount(r.Valor),
		Category:    strings.TrimSpace(r.Categoria),
		Description: strings.TrimSpace(r.Descricao),
		Notes:       strings.TrimSpace(r.Obs),
		VehicleID:   strings.TrimSpace(r.MotoID),
	}
	if r.Moto != nil {
		e.Vehicle = &VehicleSummary{
			Model:   strings.TrimSpace(r.Moto.Modelo),
			Plate:   strings.TrimSpace(r.Moto.Placa),
			Chassis: strings.TrimSpace(r.Moto.Chassi),
		}
	}
	if e.HasVehicle() {
		e.Kind = ExpenseShop
	} else {
		e.Kind = ExpenseGeneral
	}
	return e
}

// rawExtras is the preferred-contact block on customers and contracts.
type rawExtras struct {
	Nome     string `json:"nome,omitempty"`
	Telefone string `json:"telefone,omitempty"`
}

func (x *rawExtras) override() *ContactOverride {
	if x == nil || (x.Nome == "" && x.Telefone == "") {
		return nil
	}
	return &ContactOverride{Name: strings.TrimSpace(x.Nome), Phone: strings.TrimSpace(x.Telefone)}
}

// RawCustomer is a customer document as stored.
type RawCustomer struct {
	ID       string     `json:"id"`
	Nome     string     `json:"nome,omitempty"`
	CPF      string     `json:"cpf,omitempty"`
	Telefone string     `json:"telefone,omitempty"`
	Endereco string     `json:"endereco,omitempty"`
	Cidade   string     `json:"cidade,omitempty"`
	Estado   string     `json:"estado,omitempty"`
	Extras   *rawExtras `json:"extras,omitempty"`
}

// Canonical maps the raw customer into a CustomerProfile.
func (r RawCustomer) Canonical() CustomerProfile {
	return CustomerProfile{
		ID:        r.ID,
		Name:      strings.TrimSpace(r.Nome),
		TaxID:     strings.TrimSpace(r.CPF),
		Phone:     strings.TrimSpace(r.Telefone),
		Address:   strings.TrimSpace(r.Endereco),
		City:      strings.TrimSpace(r.Cidade),
		State:     strings.TrimSpace(r.Estado),
		Preferred: r.Extras.override(),
	}
}

// RawContract is a legacy contract document as stored.
type RawContract struct {
	ID          string     `json:"id"`
	ClienteNome string     `json:"clienteNome,omitempty"`
	CPF         string     `json:"cpf,omitempty"`
	Telefone    string     `json:"telefone,omitempty"`
	Endereco    string     `json:"endereco,omitempty"`
	Cidade      string     `json:"cidade,omitempty"`
	Estado      string     `json:"estado,omitempty"`
	Extras      *rawExtras `json:"extras,omitempty"`
}

// Canonical maps the raw contract into a LegacyContractProfile.
func (r RawContract) Canonical() LegacyContractProfile {
	name := strings.TrimSpace(r.ClienteNome)
	if name == "" && r.Extras != nil {
		name = strings.TrimSpace(r.Extras.Nome)
	}
	return LegacyContractProfile{
		ID:        r.ID,
		BuyerName: name,
		TaxID:     strings.TrimSpace(r.CPF),
		Phone:     strings.TrimSpace(r.Telefone),
		Address:   strings.TrimSpace(r.Endereco),
		City:      strings.TrimSpace(r.Cidade),
		State:     strings.TrimSpace(r.Estado),
		Preferred: r.Extras.override(),
	}
}

// rawVehicleAttrs is the attribute set of a vehicle document, whether it
// sits flat on the document or under the "adicionais" wrapper.
type rawVehicleAttrs struct {
	Marca          string `json:"marca,omitempty"`
	Modelo         string `json:"modelo,omitempty"`
	Ano            any    `json:"ano,omitempty"`
	AnoAlt         any    `json:"Ano,omitempty"`
	Chassi         string `json:"chassi,omitempty"`
	ChassiAlt      string `json:"Chassi,omitempty"`
	Placa          string `json:"placa,omitempty"`
	PlacaFinal     string `json:"placaFinal,omitempty"`
	Cor            string `json:"cor,omitempty"`
	Renavam        string `json:"renavam,omitempty"`
	Km             any    `json:"km,omitempty"`
	Foto           string `json:"foto,omitempty"`
	FotoPrincipal  string `json:"fotoPrincipal,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
	Fotos          []string `json:"fotos,omitempty"`
	ValorVenda     any    `json:"valorVenda,omitempty"`
	PrecoVenda     any    `json:"precoVenda,omitempty"`
	Valor          any    `json:"valor,omitempty"`
	CustoFornecedor any   `json:"custoFornecedor,omitempty"`
}

// RawVehicle is a vehicle document as stored.
type RawVehicle struct {
	ID string `json:"id"`
	rawVehicleAttrs
	Adicionais *rawVehicleAttrs `json:"adicionais,omitempty"`
}

// Canonical maps the raw vehicle into a VehicleProfile. Attributes under
// "adicionais" win over flat ones; among photo variants the first non-empty
// of imageUrl, fotoPrincipal, foto and the fotos list is kept.
func (r RawVehicle) Canonical() VehicleProfile {
	a := r.rawVehicleAttrs
	if r.Adicionais != nil {
		a = mergeVehicleAttrs(*r.Adicionais, a)
	}
	photo := firstNonEmpty(a.ImageURL, a.FotoPrincipal, a.Foto)
	if photo == "" && len(a.Fotos) > 0 {
		photo = strings.TrimSpace(a.Fotos[0])
	}
	return VehicleProfile{
		ID:           r.ID,
		Brand:        strings.TrimSpace(a.Marca),
		Model:        strings.TrimSpace(a.Modelo),
		Year:         firstNonEmpty(asString(a.Ano), asString(a.AnoAlt)),
		Chassis:      firstNonEmpty(a.Chassi, a.ChassiAlt),
		Plate:        firstNonEmpty(a.Placa, a.PlacaFinal),
		Color:        strings.TrimSpace(a.Cor),
		Renavam:      strings.TrimSpace(a.Renavam),
		Odometer:     asString(a.Km),
		PhotoURL:     photo,
		ListPrice:    types.ParseAmount(pickAny(a.ValorVenda, a.PrecoVenda, a.Valor)),
		SupplierCost: types.ParseAmount(a.CustoFornecedor),
	}
}

func mergeVehicleAttrs(primary, fallback rawVehicleAttrs) rawVehicleAttrs {
	out := primary
	out.Marca = firstNonEmpty(primary.Marca, fallback.Marca)
	out.Modelo = firstNonEmpty(primary.Modelo, fallback.Modelo)
	if out.Ano == nil {
		out.Ano = fallback.Ano
	}
	if out.AnoAlt == nil {
		out.AnoAlt = fallback.AnoAlt
	}
	out.Chassi = firstNonEmpty(primary.Chassi, fallback.Chassi)
	out.ChassiAlt = firstNonEmpty(primary.ChassiAlt, fallback.ChassiAlt)
	out.Placa = firstNonEmpty(primary.Placa, fallback.Placa)
	out.PlacaFinal = firstNonEmpty(primary.PlacaFinal, fallback.PlacaFinal)
	out.Cor = firstNonEmpty(primary.Cor, fallback.Cor)
	out.Renavam = firstNonEmpty(primary.Renavam, fallback.Renavam)
	if out.Km == nil {
		out.Km = fallback.Km
	}
	out.Foto = firstNonEmpty(primary.Foto, fallback.Foto)
	out.FotoPrincipal = firstNonEmpty(primary.FotoPrincipal, fallback.FotoPrincipal)
	out.ImageURL = firstNonEmpty(primary.ImageURL, fallback.ImageURL)
	if len(out.Fotos) == 0 {
		out.Fotos = fallback.Fotos
	}
	if out.ValorVenda == nil {
		out.ValorVenda = pickAny(fallback.ValorVenda, fallback.PrecoVenda, fallback.Valor)
	}
	if out.CustoFornecedor == nil {
		out.CustoFornecedor = fallback.CustoFornecedor
	}
	return out
}
