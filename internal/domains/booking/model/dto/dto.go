package dto

import (
	"errors"
	"mime/multipart"
	"time"

	"lodgehub/internal/domains/booking/model"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	gModel "lodgehub/shared/model"
	"lodgehub/shared/timezone"

	"github.com/lib/pq"
)

var ErrInvalidStay = errors.New("check_out must be after check_in")

// IDProofFile is one uploaded identity document taken from the multipart form.
type IDProofFile struct {
	Header *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"`
	File   multipart.File        `validate:"-"`
}

// CreateBookingRequest carries both bookings and pre-bookings. A pre-booking
// may leave booked_rooms empty; a booking must hold at least one room.
type CreateBookingRequest struct {
	LodgeID        int64             `json:"lodge_id"        validate:"required,gt=0"`
	Name           string            `json:"name"            validate:"required,max=100"`
	Phone          string            `json:"phone"           validate:"required,max=20"`
	AlternatePhone string            `json:"alternate_phone" validate:"omitempty,max=20"`
	Email          string            `json:"email"           validate:"omitempty,email"`
	Address        string            `json:"address"         validate:"omitempty,max=255"`
	NumberOfGuest  int               `json:"numberofguest"   validate:"gte=0"`
	Specification  gModel.RawJSON    `json:"specification"   swaggertype:"object"`
	CheckIn        string            `json:"check_in"        validate:"required"`
	CheckOut       string            `json:"check_out"       validate:"required"`
	BookedRooms    model.Allocation  `json:"booked_rooms"    swaggertype:"array,object"`
	Rooms          model.RoomAmounts `json:"rooms"           validate:"omitempty,dive"`
	BaseAmount     float64           `json:"baseamount"      validate:"gte=0"`
	GST            float64           `json:"gst"             validate:"gte=0"`
	Amount         float64           `json:"amount"          validate:"gte=0"`
	Advance        float64           `json:"advance"         validate:"gte=0"`
	Deposit        float64           `json:"deposite"        validate:"gte=0"`
	Balance        float64           `json:"balance"`
	AadharNumber   []string          `json:"aadhar_number"   validate:"omitempty,dive,required"`
	IDProofs       []IDProofFile     `json:"-"               validate:"omitempty,dive"         swaggerignore:"true"`
}

// Window parses the stay and rejects an empty or inverted one.
func (c *CreateBookingRequest) Window() (time.Time, time.Time, error) {
	return ParseStay(c.CheckIn, c.CheckOut)
}

func (c *CreateBookingRequest) ToModel(bookingID int64, status, user string, idProofs []string) (model.Booking, error) {
	checkIn, checkOut, err := c.Window()
	if err != nil {
		return model.Booking{}, err
	}

	now := timezone.Now()

	return model.Booking{
		BookingID:      bookingID,
		LodgeID:        c.LodgeID,
		UserID:         user,
		Name:           c.Name,
		Phone:          c.Phone,
		AlternatePhone: c.AlternatePhone,
		Email:          c.Email,
		Address:        c.Address,
		NumberOfGuest:  c.NumberOfGuest,
		Specification:  c.Specification,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		BookedRoom:     c.BookedRooms,
		RoomAmount:     c.Rooms,
		BaseAmount:     c.BaseAmount,
		GST:            c.GST,
		Amount:         c.Amount,
		Advance:        c.Advance,
		Deposit:        c.Deposit,
		Balance:        c.Balance,
		Status:         status,
		AadharNumber:   c.AadharNumber,
		IDProof:        idProofs,
		Notes:          model.Notes{},
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateBookingRequest converts a booking to BOOKED. Nil fields are left untouched.
type UpdateBookingRequest struct {
	NumberOfGuest *int          `json:"numberofguest" validate:"omitempty,gte=0"`
	Deposit       *float64      `json:"deposite"      validate:"omitempty,gte=0"`
	AadharNumber  []string      `json:"aadhar_number" validate:"omitempty,dive,required"`
	IDProofs      []IDProofFile `json:"-"             validate:"omitempty,dive"       swaggerignore:"true"`
}

// Fields lists the columns to write, given the merged proof list.
func (u *UpdateBookingRequest) Fields(user string, idProofs []string) map[string]any {
	fields := map[string]any{
		model.FieldStatus:        model.StatusBooked,
		model.FieldIDProof:       model.IDProofs(idProofs),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if u.NumberOfGuest != nil {
		fields[model.FieldNumberOfGuest] = *u.NumberOfGuest
	}

	if u.Deposit != nil {
		fields[model.FieldDeposit] = *u.Deposit
	}

	if len(u.AadharNumber) > 0 {
		fields[model.FieldAadharNumber] = pq.StringArray(u.AadharNumber)
	}

	return fields
}

type UpdateBookingDateRequest struct {
	BookingID    int64            `json:"booking_id"    validate:"required,gt=0"`
	LodgeID      int64            `json:"lodge_id"      validate:"required,gt=0"`
	CheckIn      string           `json:"check_in"      validate:"required"`
	CheckOut     string           `json:"check_out"     validate:"required"`
	UpdatedRooms model.Allocation `json:"updated_rooms" validate:"required,min=1" swaggertype:"array,object"`
}

func (u *UpdateBookingDateRequest) Window() (time.Time, time.Time, error) {
	return ParseStay(u.CheckIn, u.CheckOut)
}

// ParseStay parses a check-in/check-out pair and requires check_out after check_in.
func ParseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	start, end, err := timezone.ParseWindow(checkIn, checkOut)
	if err != nil {
		return start, end, err
	}

	if !end.After(start) {
		return start, end, ErrInvalidStay
	}

	return start, end, nil
}

type BookingResponse struct {
	BookingID      int64             `json:"booking_id"`
	LodgeID        int64             `json:"lodge_id"`
	UserID         string            `json:"user_id"`
	Name           string            `json:"name"`
	Phone          string            `json:"phone"`
	AlternatePhone string            `json:"alternate_phone"`
	Email          string            `json:"email"`
	Address        string            `json:"address"`
	NumberOfGuest  int               `json:"numberofguest"`
	Specification  gModel.RawJSON    `json:"specification"  swaggertype:"object"`
	CheckIn        string            `json:"check_in"`
	CheckOut       string            `json:"check_out"`
	OldCheckOut    *string           `json:"old_check_out"`
	BookedRoom     model.Allocation  `json:"booked_room"    swaggertype:"array,object"`
	RoomAmount     model.RoomAmounts `json:"room_amount"`
	BaseAmount     float64           `json:"baseamount"`
	GST            float64           `json:"gst"`
	Amount         float64           `json:"amount"`
	Advance        float64           `json:"advance"`
	Deposit        float64           `json:"deposite"`
	Balance        float64           `json:"balance"`
	Status         string            `json:"status"`
	AadharNumber   []string          `json:"aadhar_number"`
	IDProof        []string          `json:"id_proof"`
	Notes          model.Notes       `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.BookingID = m.BookingID
	r.LodgeID = m.LodgeID
	r.UserID = m.UserID
	r.Name = m.Name
	r.Phone = m.Phone
	r.AlternatePhone = m.AlternatePhone
	r.Email = m.Email
	r.Address = m.Address
	r.NumberOfGuest = m.NumberOfGuest
	r.Specification = m.Specification
	r.CheckIn = timezone.Format(m.CheckIn, constant.DateFormat)
	r.CheckOut = timezone.Format(m.CheckOut, constant.DateFormat)
	r.BookedRoom = m.BookedRoom
	r.RoomAmount = m.RoomAmount
	r.BaseAmount = m.BaseAmount
	r.GST = m.GST
	r.Amount = m.Amount
	r.Advance = m.Advance
	r.Deposit = m.Deposit
	r.Balance = m.Balance
	r.Status = m.Status
	r.AadharNumber = m.AadharNumber
	r.IDProof = m.IDProof
	r.Notes = m.Notes
	r.Metadata.FromModel(m.Metadata)

	if m.OldCheckOut != nil {
		old := timezone.Format(*m.OldCheckOut, constant.DateFormat)
		r.OldCheckOut = &old
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, m := range models {
		r.Bookings[i].FromModel(m)
	}
}
